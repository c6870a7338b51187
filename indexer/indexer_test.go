package indexer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mrobinsn/go-tvmaze/tvmaze"
	"github.com/onsi/gomega"

	"github.com/benkelly/easyznab/categories"
	"github.com/benkelly/easyznab/easynews"
	"github.com/benkelly/easyznab/indexer/mocks"
	"github.com/benkelly/easyznab/metadata"
	"github.com/benkelly/easyznab/newznab"
)

var testCreds = easynews.Credentials{Username: "user", Password: "secret"}

func testResult(i int, filename string) easynews.Result {
	return easynews.Result{
		ID:          fmt.Sprintf("id-%d", i),
		Subject:     fmt.Sprintf(`%d "%s" yEnc`, i, filename),
		Filename:    filename,
		Extension:   strings.TrimPrefix(path.Ext(filename), "."),
		DownloadURL: fmt.Sprintf("https://members.easynews.com/dl/%d.nzb", i),
		Size:        int64(1000 + i),
		Posted:      time.Date(2025, 3, 25, 12, 0, 0, 0, time.UTC),
	}
}

func pageOf(n int) []easynews.Result {
	results := make([]easynews.Result, n)
	for i := range results {
		results[i] = testResult(i, fmt.Sprintf("Release.%d.avi", i))
	}
	return results
}

func parse(t *testing.T, raw string) newznab.Request {
	v, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatal(err)
	}
	req, err := newznab.ParseRequest(v)
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func newTestIndexer(t *testing.T, fetcher Fetcher, opts Options) *Indexer {
	opts.Credentials = testCreds
	ix, err := New(fetcher, opts)
	if err != nil {
		t.Fatal(err)
	}
	return ix
}

func TestSearch_TVSearch(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	expected := easynews.Query{
		Terms:     "Example Show S02E05",
		PageSize:  100,
		FileTypes: []string{easynews.FileTypeVideo},
	}
	fetcher.EXPECT().Fetch(gomock.Any(), expected, testCreds).Return([]easynews.Result{
		testResult(1, "Example.Show.S02E05.720p.mkv"),
		testResult(2, "Example.Show.S02E05.2160p.mkv"),
	}, nil)

	ix := newTestIndexer(t, fetcher, Options{})
	feed, err := ix.Search(context.Background(), parse(t, "t=tvsearch&q=Example+Show&season=2&ep=5"))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(feed.Items).To(gomega.HaveLen(2))
	g.Expect(feed.Items[0].Title).To(gomega.Equal("Example Show S02E05 720p mkv"))
	g.Expect(feed.Items[0].Category).To(gomega.Equal(categories.CategoryTVHD))
	g.Expect(feed.Items[1].Category).To(gomega.Equal(categories.CategoryTVUHD))
	g.Expect(feed.Offset).To(gomega.Equal(0))
	g.Expect(feed.Total).To(gomega.Equal(2))
}

func TestSearch_Probe(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ix := newTestIndexer(t, mocks.NewMockFetcher(ctrl), Options{})
	for _, raw := range []string{"t=search", "t=movie", "t=movie&cat=2000", "t=music", "t=audio&cat=3000"} {
		feed, err := ix.Search(context.Background(), parse(t, raw))
		g.Expect(err).ToNot(gomega.HaveOccurred(), raw)
		g.Expect(feed.Items).To(gomega.HaveLen(1), raw)
		g.Expect(feed.Items[0].Link).To(gomega.Equal(probeLink), raw)
	}
}

func TestSearch_Window(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), testCreds).
		DoAndReturn(func(_ context.Context, q easynews.Query, _ easynews.Credentials) ([]easynews.Result, error) {
			g.Expect(q.Page).To(gomega.Equal(1))
			g.Expect(q.Skip).To(gomega.Equal(50))
			g.Expect(q.Truncated).To(gomega.BeTrue())
			return pageOf(100), nil
		})

	ix := newTestIndexer(t, fetcher, Options{})
	feed, err := ix.Search(context.Background(), parse(t, "t=search&q=release&offset=150&limit=20"))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(feed.Items).To(gomega.HaveLen(20))
	g.Expect(feed.Items[0].Title).To(gomega.Equal("Release 50 avi"))
	g.Expect(feed.Offset).To(gomega.Equal(150))
	g.Expect(feed.Total).To(gomega.Equal(170))
}

func TestSearch_WindowPastTheResults(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(pageOf(10), nil)

	ix := newTestIndexer(t, fetcher, Options{})
	feed, err := ix.Search(context.Background(), parse(t, "t=search&q=release&offset=30"))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(feed.Items).To(gomega.BeEmpty())
}

func TestSearch_LimitIsClamped(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(pageOf(50), nil)

	ix := newTestIndexer(t, fetcher, Options{PageSize: 50})
	g.Expect(ix.Capabilities().Limits.Max).To(gomega.Equal(50))
	feed, err := ix.Search(context.Background(), parse(t, "t=search&q=release&limit=500"))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(feed.Items).To(gomega.HaveLen(50))
}

func TestSearch_CategoryFilter(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return([]easynews.Result{
		testResult(1, "Some.Book.epub"),
		testResult(2, "Example.Show.S01E01.720p.mkv"),
		testResult(3, "Some.Movie.2019.1080p.mkv"),
	}, nil)

	ix := newTestIndexer(t, fetcher, Options{})
	feed, err := ix.Search(context.Background(), parse(t, "t=search&q=some&cat=5000,2040"))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(feed.Items).To(gomega.HaveLen(2))
	g.Expect(feed.Items[0].Category).To(gomega.Equal(categories.CategoryTVHD))
	g.Expect(feed.Items[1].Category).To(gomega.Equal(categories.CategoryMoviesHD))
}

func TestSearch_SkipsUnmappableResults(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	results := pageOf(3)
	results[1].DownloadURL = "ftp://members.easynews.com/1.nzb"
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(results, nil)

	ix := newTestIndexer(t, fetcher, Options{})
	feed, err := ix.Search(context.Background(), parse(t, "t=search&q=release"))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(feed.Items).To(gomega.HaveLen(2))
	g.Expect(feed.Items[0].Title).To(gomega.Equal("Release 0 avi"))
	g.Expect(feed.Items[1].Title).To(gomega.Equal("Release 2 avi"))
}

func TestSearch_UpstreamErrors(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	upstreamErr := &easynews.Error{Op: "search", StatusCode: 401, Err: easynews.ErrUnauthorized}
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstreamErr)

	ix := newTestIndexer(t, fetcher, Options{})
	_, err := ix.Search(context.Background(), parse(t, "t=search&q=x"))
	g.Expect(easynews.IsUnauthorized(err)).To(gomega.BeTrue())
}

func TestSearch_BadRequestsDoNotFetch(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ix := newTestIndexer(t, mocks.NewMockFetcher(ctrl), Options{})
	for _, raw := range []string{"t=tvsearch", "t=tvsearch&q=x&season=one", "t=tvsearch&q=x&ep=2", "t=caps"} {
		_, err := ix.Search(context.Background(), parse(t, raw))
		g.Expect(newznab.IsBadRequest(err)).To(gomega.BeTrue(), raw)
	}
}

func TestSearch_EnrichmentFailureFallsBack(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enricher := mocks.NewMockEnricher(ctrl)
	enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).Return(errors.New("imdb is down"))
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q easynews.Query, _ easynews.Credentials) ([]easynews.Result, error) {
			g.Expect(q.Terms).To(gomega.Equal("tt0133093"))
			return nil, nil
		})

	ix := newTestIndexer(t, fetcher, Options{Enricher: enricher})
	feed, err := ix.Search(context.Background(), parse(t, "t=movie&imdbid=0133093"))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(feed.Items).To(gomega.BeEmpty())
}

func TestSearch_EnrichedSeries(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enricher := mocks.NewMockEnricher(ctrl)
	enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req newznab.Request) error {
		req.(*newznab.TVSearchRequest).Series = "Example Show"
		return nil
	})
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q easynews.Query, _ easynews.Credentials) ([]easynews.Result, error) {
			g.Expect(q.Terms).To(gomega.Equal("Example Show S01E02"))
			return []easynews.Result{
				testResult(1, "Example.Show.S01E02.720p.mkv"),
				testResult(2, "Other.Show.S01E02.720p.mkv"),
			}, nil
		})

	ix := newTestIndexer(t, fetcher, Options{Enricher: enricher, SeriesFilter: true})
	ix.seriesMatch = func(series, title string) bool {
		return len(title) >= len(series) && title[:len(series)] == series
	}
	feed, err := ix.Search(context.Background(), parse(t, "t=tvsearch&tvdbid=81189&season=1&ep=2"))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(feed.Items).To(gomega.HaveLen(1))
	g.Expect(feed.Items[0].Title).To(gomega.HavePrefix("Example Show"))
}

func TestCapabilities_MatchWhatCanBeServed(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ix := newTestIndexer(t, mocks.NewMockFetcher(ctrl), Options{Version: "test"})
	caps := ix.Capabilities()
	g.Expect(caps.Limits.Max).To(gomega.Equal(easynews.DefaultPageSize))
	g.Expect(caps.HasTVShows()).To(gomega.BeTrue())
	g.Expect(caps.HasMovies()).To(gomega.BeTrue())
	g.Expect(caps.HasCategory(categories.CategoryOther.ID)).To(gomega.BeTrue())

	producible := categories.Producible()
	for _, cat := range caps.Categories.Items() {
		g.Expect(cat.IsParent() || producible.ContainsCat(*cat)).To(gomega.BeTrue(), cat.String())
	}
	for _, kind := range newznab.SearchKinds {
		g.Expect(caps.Supports(kind)).To(gomega.BeTrue(), string(kind))
	}
}

func TestSearch_SlowLookupIsBounded(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enricher := mocks.NewMockEnricher(ctrl)
	enricher.EXPECT().Enrich(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ newznab.Request) error {
		<-ctx.Done()
		return ctx.Err()
	})
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q easynews.Query, _ easynews.Credentials) ([]easynews.Result, error) {
			g.Expect(q.Terms).To(gomega.Equal("S01E02"))
			return nil, nil
		})

	ix := newTestIndexer(t, fetcher, Options{Enricher: enricher, EnrichTimeout: 50 * time.Millisecond})
	started := time.Now()
	_, err := ix.Search(context.Background(), parse(t, "t=tvsearch&tvdbid=81189&season=1&ep=2"))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(time.Since(started)).To(gomega.BeNumerically("<", time.Second))
}

// stalledShows never answers, like a show lookup over a client without timeouts.
type stalledShows struct {
	release chan struct{}
}

func (s stalledShows) wait() (*tvmaze.Show, error) {
	<-s.release
	return nil, errors.New("released")
}

func (s stalledShows) ByTVDBID(string) (*tvmaze.Show, error)   { return s.wait() }
func (s stalledShows) ByTVMazeID(string) (*tvmaze.Show, error) { return s.wait() }
func (s stalledShows) ByTVRageID(string) (*tvmaze.Show, error) { return s.wait() }

func TestSearch_StalledShowLookupStillSearches(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shows := stalledShows{release: make(chan struct{})}
	defer close(shows.release)
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	ix := newTestIndexer(t, fetcher, Options{
		Enricher:      metadata.NewWithSources(shows, nil),
		EnrichTimeout: 50 * time.Millisecond,
	})
	done := make(chan error, 1)
	go func() {
		_, err := ix.Search(context.Background(), parse(t, "t=tvsearch&tvdbid=81189&season=1&ep=2"))
		done <- err
	}()
	g.Eventually(done, 2*time.Second).Should(gomega.Receive(gomega.BeNil()))
}

func TestCapabilities_WithoutLookups(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ix := newTestIndexer(t, mocks.NewMockFetcher(ctrl), Options{})
	ok, params := ix.Capabilities().HasSearchMode("tv-search")
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(params).To(gomega.Equal([]string{"q", "season", "ep"}))
	_, params = ix.Capabilities().HasSearchMode("movie-search")
	g.Expect(params).To(gomega.Equal([]string{"q", "imdbid"}))

	_, err := ix.Search(context.Background(), parse(t, "t=tvsearch&tvdbid=81189&season=1&ep=2"))
	g.Expect(newznab.IsBadRequest(err)).To(gomega.BeTrue())
}

func TestCapabilities_WithLookups(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ix := newTestIndexer(t, mocks.NewMockFetcher(ctrl), Options{Enricher: mocks.NewMockEnricher(ctrl)})
	_, params := ix.Capabilities().HasSearchMode("tv-search")
	g.Expect(params).To(gomega.Equal(newznab.SupportedParams(newznab.KindTVSearch)))
}

func TestMatchesSeries(t *testing.T) {
	tests := []struct {
		series string
		title  string
		want   bool
	}{
		{"Example Show", "Example Show S01E02 720p mkv", true},
		{"Example Show", "Example.Show.S01E02.720p.mkv", true},
		{"Example Show", "Other Show S01E02 720p mkv", false},
		{"Example Show", "No title", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := MatchesSeries(tt.series, tt.title); got != tt.want {
				t.Errorf("MatchesSeries(%q, %q) = %v, want %v", tt.series, tt.title, got, tt.want)
			}
		})
	}
}
