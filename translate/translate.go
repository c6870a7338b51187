package translate

import (
	"errors"
	"sort"
	"strings"

	"github.com/benkelly/easyznab/categories"
	"github.com/benkelly/easyznab/easynews"
	"github.com/benkelly/easyznab/newznab"
)

// ErrProbe is returned for a search, movie or music request that carries nothing to search for.
// Indexer managers send those to test the connection and for RSS syncs.
var ErrProbe = errors.New("search without terms")

// fileTypes maps top level categories onto the Easynews file type filter.
var fileTypes = map[int]string{
	categories.CategoryMovies.ID: easynews.FileTypeVideo,
	categories.CategoryTV.ID:     easynews.FileTypeVideo,
	categories.CategoryAudio.ID:  easynews.FileTypeAudio,
	categories.CategoryBooks.ID:  easynews.FileTypeDocument,
}

// Translator turns newznab requests into Easynews searches.
// It holds no state besides its configuration, the same request always gives the same query.
type Translator struct {
	pageSize int
}

func New(pageSize int) *Translator {
	if pageSize <= 0 {
		pageSize = easynews.DefaultPageSize
	}
	return &Translator{pageSize: pageSize}
}

func (t *Translator) PageSize() int {
	return t.pageSize
}

// Translate builds the Easynews query for a search request.
// Requests that can't be searched fail with an error matching newznab.ErrBadRequest.
func (t *Translator) Translate(req newznab.Request) (easynews.Query, error) {
	v := &queryBuilder{}
	if err := req.Accept(v); err != nil {
		return easynews.Query{}, err
	}
	base := req.Base()
	q := easynews.Query{
		Terms:     v.terms,
		PageSize:  t.pageSize,
		FileTypes: requestedFileTypes(base.Categories, v.defaultFileType),
	}
	q.Page, q.Skip = t.Window(base.Offset)
	q.Truncated = q.Skip != 0
	return q, nil
}

// Window locates an offset within the fixed size pages of Easynews.
func (t *Translator) Window(offset int) (page, skip int) {
	if offset <= 0 {
		return 0, 0
	}
	return offset / t.pageSize, offset % t.pageSize
}

// requestedFileTypes narrows the search when every requested category maps onto a file type.
func requestedFileTypes(ids []int, fallback string) []string {
	cats := categories.AllCategories.Subset(ids...)
	if cats.Len() == 0 {
		if fallback == "" {
			return nil
		}
		return []string{fallback}
	}
	set := map[string]struct{}{}
	for _, cat := range cats {
		ft, ok := fileTypes[categories.ParentCategory(*cat).ID]
		if !ok {
			return nil
		}
		set[ft] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for ft := range set {
		out = append(out, ft)
	}
	sort.Strings(out)
	return out
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func joinTerms(parts ...string) string {
	var terms []string
	for _, p := range parts {
		if p = normalize(p); p != "" {
			terms = append(terms, p)
		}
	}
	return strings.Join(terms, " ")
}
