package mapper

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/benkelly/easyznab/easynews"
	"github.com/benkelly/easyznab/newznab"
)

// ErrSkipped marks a result that couldn't be turned into an item.
var ErrSkipped = errors.New("result skipped")

// DefaultBaseURL resolves relative download references.
const DefaultBaseURL = "https://members.easynews.com/"

// guidNamespace scopes the generated guids to Easynews file ids.
var guidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(DefaultBaseURL))

// Mapper turns Easynews results into newznab items.
type Mapper struct {
	base   *url.URL
	logger *log.Entry
}

func New(baseURL string) (*Mapper, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	return &Mapper{
		base:   base,
		logger: log.WithField("component", "mapper"),
	}, nil
}

// Map converts the results in order. Results that can't be mapped are logged and left out.
func (m *Mapper) Map(results []easynews.Result) []newznab.Item {
	items := make([]newznab.Item, 0, len(results))
	for i, r := range results {
		item, err := m.MapResult(r)
		if err != nil {
			m.logger.
				WithFields(log.Fields{"index": i, "id": r.ID, "subject": r.Subject}).
				WithError(err).
				Warn("Skipping result")
			continue
		}
		items = append(items, item)
	}
	return items
}

// MapResult converts a single result. The error matches ErrSkipped.
func (m *Mapper) MapResult(r easynews.Result) (newznab.Item, error) {
	link, err := m.Link(r.DownloadURL)
	if err != nil {
		return newznab.Item{}, err
	}
	item := newznab.Item{
		Title:       TidyTitle(r.Subject),
		GUID:        GUID(r.ID),
		Link:        link,
		Description: r.Description,
		Category:    Classify(r),
		PublishDate: r.Posted,
		Size:        r.Size,
		Poster:      r.Poster,
	}
	if len(r.Groups) > 0 {
		item.Group = r.Groups[0]
	}
	return item, nil
}

// GUID is a name based uuid of the Easynews file id, so it never changes between searches.
func GUID(id string) string {
	return uuid.NewSHA1(guidNamespace, []byte(id)).String()
}

// Link composes the download url of a result from its reference.
// References that can't be encoded into a url fail with ErrSkipped.
func (m *Mapper) Link(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty download reference", ErrSkipped)
	}
	if !utf8.ValidString(ref) {
		return "", fmt.Errorf("%w: download reference is not valid utf-8", ErrSkipped)
	}
	if strings.IndexFunc(ref, unicode.IsControl) >= 0 {
		return "", fmt.Errorf("%w: download reference contains control characters", ErrSkipped)
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSkipped, err)
	}
	u = m.base.ResolveReference(u)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrSkipped, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: download reference has no host", ErrSkipped)
	}
	u.User = nil
	return u.String(), nil
}
