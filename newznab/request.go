package newznab

import "strings"

// Kind is the newznab function requested through the `t` parameter.
type Kind string

const (
	KindCaps     Kind = "caps"
	KindSearch   Kind = "search"
	KindTVSearch Kind = "tvsearch"
	KindMovie    Kind = "movie"
	KindMusic    Kind = "music"
)

var kindAliases = map[string]Kind{
	"caps":         KindCaps,
	"search":       KindSearch,
	"tvsearch":     KindTVSearch,
	"tv-search":    KindTVSearch,
	"movie":        KindMovie,
	"movie-search": KindMovie,
	"moviesearch":  KindMovie,
	"music":        KindMusic,
	"audio":        KindMusic,
	"audio-search": KindMusic,
}

// ParseKind resolves the value of `t`, including the aliases clients send.
func ParseKind(t string) (Kind, bool) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(t))]
	return k, ok
}

// ModeKey is the name of the searching mode in the caps document.
func (k Kind) ModeKey() string {
	switch k {
	case KindSearch:
		return "search"
	case KindTVSearch:
		return "tv-search"
	case KindMovie:
		return "movie-search"
	case KindMusic:
		return "audio-search"
	}
	return ""
}

// Paging is the requested result window.
type Paging struct {
	Offset int
	Limit  int
}

// Common holds the parameters shared by every search function.
type Common struct {
	Paging
	Categories []int
	Extended   bool
}

// Request is one of the closed set of newznab functions.
// Every variant dispatches itself through Accept, so a Visitor must handle all of them.
type Request interface {
	Kind() Kind
	Base() Common
	Accept(v Visitor) error
}

// Visitor has one method per request variant.
type Visitor interface {
	VisitCaps(r *CapsRequest) error
	VisitSearch(r *SearchRequest) error
	VisitTVSearch(r *TVSearchRequest) error
	VisitMovie(r *MovieRequest) error
	VisitMusic(r *MusicRequest) error
}

type CapsRequest struct{}

func (r *CapsRequest) Kind() Kind             { return KindCaps }
func (r *CapsRequest) Base() Common           { return Common{} }
func (r *CapsRequest) Accept(v Visitor) error { return v.VisitCaps(r) }

// SearchRequest is a free text search.
type SearchRequest struct {
	Common
	Query string
}

func (r *SearchRequest) Kind() Kind             { return KindSearch }
func (r *SearchRequest) Base() Common           { return r.Common }
func (r *SearchRequest) Accept(v Visitor) error { return v.VisitSearch(r) }

// TVSearchRequest searches for an episode or season of a show.
// Series is filled in when the show is resolved from one of the ids.
type TVSearchRequest struct {
	Common
	Query    string
	Series   string
	Season   string
	Episode  string
	TVDBID   string
	TVMazeID string
	TVRageID string
	IMDBID   string
}

func (r *TVSearchRequest) Kind() Kind             { return KindTVSearch }
func (r *TVSearchRequest) Base() Common           { return r.Common }
func (r *TVSearchRequest) Accept(v Visitor) error { return v.VisitTVSearch(r) }

// HasIDs checks if any show identifier was given.
func (r *TVSearchRequest) HasIDs() bool {
	return r.TVDBID != "" || r.TVMazeID != "" || r.TVRageID != "" || r.IMDBID != ""
}

// MovieRequest searches for a movie. Title and Year are filled in from the imdb id when possible.
type MovieRequest struct {
	Common
	Query  string
	IMDBID string
	Title  string
	Year   string
}

func (r *MovieRequest) Kind() Kind             { return KindMovie }
func (r *MovieRequest) Base() Common           { return r.Common }
func (r *MovieRequest) Accept(v Visitor) error { return v.VisitMovie(r) }

// NormalizedIMDBID returns the imdb id in the tt0000000 form, or an empty string.
func (r *MovieRequest) NormalizedIMDBID() string {
	id := strings.TrimSpace(r.IMDBID)
	if id == "" {
		return ""
	}
	if !strings.HasPrefix(id, "tt") {
		id = "tt" + id
	}
	return id
}

// MusicRequest searches for audio releases.
type MusicRequest struct {
	Common
	Query  string
	Artist string
	Album  string
}

func (r *MusicRequest) Kind() Kind             { return KindMusic }
func (r *MusicRequest) Base() Common           { return r.Common }
func (r *MusicRequest) Accept(v Visitor) error { return v.VisitMusic(r) }
