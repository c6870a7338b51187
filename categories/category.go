package categories

import (
	"fmt"
	"sort"
)

type Category struct {
	ID   int
	Name string
}

func (c Category) String() string {
	return fmt.Sprintf("%s[%d]", c.Name, c.ID)
}

// Categories of the Newznab API
// https://github.com/nZEDb/nZEDb/blob/0.x/docs/newznab_api_specification.txt#L627
var (
	CategoryMovies         = Category{2000, "Movies"}
	CategoryMoviesForeign  = Category{2010, "Movies/Foreign"}
	CategoryMoviesOther    = Category{2020, "Movies/Other"}
	CategoryMoviesSD       = Category{2030, "Movies/SD"}
	CategoryMoviesHD       = Category{2040, "Movies/HD"}
	CategoryMoviesUHD      = Category{2045, "Movies/UHD"}
	CategoryMoviesBluRay   = Category{2050, "Movies/BluRay"}
	CategoryMovies3D       = Category{2060, "Movies/3D"}
	CategoryMoviesDVD      = Category{2070, "Movies/DVD"}
	CategoryMoviesWEBDL    = Category{2080, "Movies/WEB-DL"}
	CategoryAudio          = Category{3000, "Audio"}
	CategoryAudioMP3       = Category{3010, "Audio/MP3"}
	CategoryAudioVideo     = Category{3020, "Audio/Video"}
	CategoryAudioAudiobook = Category{3030, "Audio/Audiobook"}
	CategoryAudioLossless  = Category{3040, "Audio/Lossless"}
	CategoryAudioOther     = Category{3050, "Audio/Other"}
	CategoryAudioForeign   = Category{3060, "Audio/Foreign"}
	CategoryPC             = Category{4000, "PC"}
	CategoryPC0day         = Category{4010, "PC/0day"}
	CategoryPCISO          = Category{4020, "PC/ISO"}
	CategoryPCMac          = Category{4030, "PC/Mac"}
	CategoryPCPhoneOther   = Category{4040, "PC/Mobile-Other"}
	CategoryPCGames        = Category{4050, "PC/Games"}
	CategoryPCPhoneIOS     = Category{4060, "PC/Mobile-iOS"}
	CategoryPCPhoneAndroid = Category{4070, "PC/Mobile-Android"}
	CategoryTV             = Category{5000, "TV"}
	CategoryTVWEBDL        = Category{5010, "TV/WEB-DL"}
	CategoryTVFOREIGN      = Category{5020, "TV/Foreign"}
	CategoryTVSD           = Category{5030, "TV/SD"}
	CategoryTVHD           = Category{5040, "TV/HD"}
	CategoryTVUHD          = Category{5045, "TV/UHD"}
	CategoryTVOther        = Category{5050, "TV/Other"}
	CategoryTVSport        = Category{5060, "TV/Sport"}
	CategoryTVAnime        = Category{5070, "TV/Anime"}
	CategoryTVDocumentary  = Category{5080, "TV/Documentary"}
	CategoryBooks          = Category{7000, "Books"}
	CategoryBooksMagazines = Category{7010, "Books/Mags"}
	CategoryBooksEbook     = Category{7020, "Books/EBook"}
	CategoryBooksComics    = Category{7030, "Books/Comics"}
	CategoryBooksTechnical = Category{7040, "Books/Technical"}
	CategoryBooksOther     = Category{7050, "Books/Other"}
	CategoryBooksForeign   = Category{7060, "Books/Foreign"}
	CategoryOther          = Category{8000, "Other"}
	CategoryOtherMisc      = Category{8010, "Other/Misc"}
	CategoryOtherHashed    = Category{8020, "Other/Hashed"}
)

var AllCategories = CreateCategorySet([]Category{
	CategoryMovies,
	CategoryMoviesForeign,
	CategoryMoviesOther,
	CategoryMoviesSD,
	CategoryMoviesHD,
	CategoryMoviesUHD,
	CategoryMoviesBluRay,
	CategoryMovies3D,
	CategoryMoviesDVD,
	CategoryMoviesWEBDL,
	CategoryAudio,
	CategoryAudioMP3,
	CategoryAudioVideo,
	CategoryAudioAudiobook,
	CategoryAudioLossless,
	CategoryAudioOther,
	CategoryAudioForeign,
	CategoryPC,
	CategoryPC0day,
	CategoryPCISO,
	CategoryPCMac,
	CategoryPCPhoneOther,
	CategoryPCGames,
	CategoryPCPhoneIOS,
	CategoryPCPhoneAndroid,
	CategoryTV,
	CategoryTVWEBDL,
	CategoryTVFOREIGN,
	CategoryTVSD,
	CategoryTVHD,
	CategoryTVUHD,
	CategoryTVOther,
	CategoryTVSport,
	CategoryTVAnime,
	CategoryTVDocumentary,
	CategoryBooks,
	CategoryBooksMagazines,
	CategoryBooksEbook,
	CategoryBooksComics,
	CategoryBooksTechnical,
	CategoryBooksOther,
	CategoryBooksForeign,
	CategoryOther,
	CategoryOtherMisc,
	CategoryOtherHashed,
})

type Categories map[int]*Category

func CreateCategorySet(cats []Category) Categories {
	cs := Categories{}
	for _, c := range cats {
		cx := c
		cs[c.ID] = &cx
	}
	return cs
}

// ParentCategory returns the top level category that c belongs to.
// Ranges without a top level category here (console, xxx) fall under Other.
func ParentCategory(c Category) Category {
	switch c.ID / 1000 {
	case 2:
		return CategoryMovies
	case 3:
		return CategoryAudio
	case 4:
		return CategoryPC
	case 5:
		return CategoryTV
	case 7:
		return CategoryBooks
	}
	return CategoryOther
}

// IsParent is true for the top level categories (x000).
func (c Category) IsParent() bool {
	return c.ID%1000 == 0
}

// Items returns the categories ordered by id.
func (slice Categories) Items() []*Category {
	v := make([]*Category, 0, len(slice))
	for _, c := range slice {
		if c == nil {
			continue
		}
		v = append(v, c)
	}
	sort.Slice(v, func(i, j int) bool {
		return v[i].ID < v[j].ID
	})
	return v
}

func (slice Categories) ContainsCat(cat Category) bool {
	_, ok := slice[cat.ID]
	return ok
}

// Matches checks if cat, or its parent, is in the set.
func (slice Categories) Matches(cat Category) bool {
	if slice.ContainsCat(cat) {
		return true
	}
	return slice.ContainsCat(ParentCategory(cat))
}

// Subset picks the known categories with the given ids. Unknown ids are left out.
func (slice Categories) Subset(ids ...int) Categories {
	cats := Categories{}
	for _, id := range ids {
		if cat, ok := slice[id]; ok && cat != nil {
			cats[cat.ID] = cat
		}
	}
	return cats
}

// WithParents returns a copy of the set extended with the parent of every category.
func (slice Categories) WithParents() Categories {
	cats := Categories{}
	for id, cat := range slice {
		if cat == nil {
			continue
		}
		cats[id] = cat
		parent := ParentCategory(*cat)
		if _, ok := cats[parent.ID]; !ok {
			px := parent
			cats[parent.ID] = &px
		}
	}
	return cats
}

func (slice Categories) Len() int {
	return len(slice)
}
