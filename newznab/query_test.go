package newznab

import (
	"net/url"
	"testing"

	"github.com/onsi/gomega"
)

func TestParseRequest_TVSearch(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	v, _ := url.ParseQuery("t=tvsearch&q=Example+Show&season=2&ep=5&cat=5000,5040&offset=10&limit=20&apikey=x")
	req, err := ParseRequest(v)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	tv, ok := req.(*TVSearchRequest)
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(tv.Query).To(gomega.Equal("Example Show"))
	g.Expect(tv.Season).To(gomega.Equal("2"))
	g.Expect(tv.Episode).To(gomega.Equal("5"))
	g.Expect(tv.Categories).To(gomega.Equal([]int{5000, 5040}))
	g.Expect(tv.Offset).To(gomega.Equal(10))
	g.Expect(tv.Limit).To(gomega.Equal(20))
}

func TestParseRequest_Aliases(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	for raw, kind := range map[string]Kind{
		"tv-search":    KindTVSearch,
		"movie-search": KindMovie,
		"audio":        KindMusic,
		"CAPS":         KindCaps,
	} {
		req, err := ParseRequest(url.Values{"t": {raw}})
		g.Expect(err).ToNot(gomega.HaveOccurred())
		g.Expect(req.Kind()).To(gomega.Equal(kind))
	}
}

func TestParseRequest_IgnoresParamsOfOtherFunctions(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	req, err := ParseRequest(url.Values{"t": {"search"}, "q": {"abc"}, "season": {"1"}, "imdbid": {"123"}})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(req).To(gomega.Equal(&SearchRequest{Query: "abc"}))
}

func TestParseRequest_Errors(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	cases := map[string]url.Values{
		"missing t":       {"q": {"abc"}},
		"unknown t":       {"t": {"register"}},
		"two t":           {"t": {"search", "movie"}},
		"bad limit":       {"t": {"search"}, "limit": {"ten"}},
		"negative offset": {"t": {"search"}, "offset": {"-1"}},
		"bad cat":         {"t": {"search"}, "cat": {"5000,tv"}},
		"two seasons":     {"t": {"tvsearch"}, "season": {"1", "2"}},
		"bad extended":    {"t": {"search"}, "extended": {"maybe"}},
	}
	for name, v := range cases {
		_, err := ParseRequest(v)
		g.Expect(err).To(gomega.HaveOccurred(), name)
		g.Expect(IsBadRequest(err)).To(gomega.BeTrue(), name)
	}
}

func TestParseRequest_ErrorCodes(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	_, err := ParseRequest(url.Values{})
	g.Expect(err.(*RequestError).Code()).To(gomega.Equal(ErrMissingParameter))

	_, err = ParseRequest(url.Values{"t": {"details"}})
	g.Expect(err.(*RequestError).Code()).To(gomega.Equal(ErrNoSuchFunction))

	_, err = ParseRequest(url.Values{"t": {"search"}, "limit": {"x"}})
	g.Expect(err.(*RequestError).Code()).To(gomega.Equal(ErrIncorrectParameter))
}

func TestEncode_RoundTrip(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	req := &MovieRequest{Common: Common{Paging: Paging{Offset: 100, Limit: 50}, Categories: []int{2000}}, IMDBID: "tt0133093"}
	parsed, err := ParseRequest(Encode(req))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(parsed).To(gomega.Equal(req))
}

func TestMovieRequest_NormalizedIMDBID(t *testing.T) {
	g := gomega.NewGomegaWithT(t)
	g.Expect((&MovieRequest{IMDBID: "0133093"}).NormalizedIMDBID()).To(gomega.Equal("tt0133093"))
	g.Expect((&MovieRequest{IMDBID: "tt0133093"}).NormalizedIMDBID()).To(gomega.Equal("tt0133093"))
	g.Expect((&MovieRequest{}).NormalizedIMDBID()).To(gomega.BeEmpty())
}
