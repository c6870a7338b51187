package metadata

import "context"

// await runs a lookup that can't be cancelled and gives up waiting once ctx is done.
// The lookup must only write to variables the caller reads after a nil error.
func await(ctx context.Context, lookup func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- lookup()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
