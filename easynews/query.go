package easynews

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of results Easynews returns for one page.
const DefaultPageSize = 100

// File type filters understood by the global search.
const (
	FileTypeVideo    = "VIDEO"
	FileTypeAudio    = "AUDIO"
	FileTypeDocument = "DOCUMENT"
	FileTypeImage    = "IMAGE"
	FileTypeArchive  = "ARCHIVE"
)

// Query is a global search in the shape Easynews expects it.
// Page is 0-based here and sent 1-based.
// Skip and Truncated describe where the requested offset lands inside the page; they are not sent.
type Query struct {
	Terms     string
	Page      int
	PageSize  int
	FileTypes []string
	Skip      int
	Truncated bool
}

// Values encodes the query parameters of the search.
func (q Query) Values() url.Values {
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	v := url.Values{}
	v.Set("sbj", q.Terms)
	v.Set("sS", "5")
	v.Set("pby", strconv.Itoa(pageSize))
	v.Set("pno", strconv.Itoa(q.Page+1))
	for _, ft := range q.FileTypes {
		v.Add("fty[]", ft)
	}
	return v
}

func (q Query) String() string {
	s := q.Terms + " page " + strconv.Itoa(q.Page+1)
	if len(q.FileTypes) > 0 {
		s += " [" + strings.Join(q.FileTypes, ",") + "]"
	}
	return s
}

// Credentials are the basic auth account used for one search.
type Credentials struct {
	Username string
	Password string
}

// IsSet is false when no username was configured.
func (c Credentials) IsSet() bool {
	return c.Username != ""
}

// String hides the password so credentials can't leak through formatting.
func (c Credentials) String() string {
	if !c.IsSet() {
		return "<none>"
	}
	return c.Username + ":***"
}

func (c Credentials) GoString() string {
	return c.String()
}
