package newznab

import (
	"encoding/xml"
	"strings"

	"github.com/benkelly/easyznab/categories"
)

// SearchMode is one entry of the caps `searching` block.
type SearchMode struct {
	Key             string
	Available       bool
	SupportedParams []string
}

type ServerInfo struct {
	Title     string
	Strapline string
	Email     string
	URL       string
	Version   string
}

type Limits struct {
	Max     int
	Default int
}

// Capabilities describes what the indexer can be asked for.
type Capabilities struct {
	Server      ServerInfo
	Limits      Limits
	SearchModes []SearchMode
	Categories  categories.Categories
}

// NewCapabilities advertises every search function with the parameters ParseRequest reads for it.
func NewCapabilities(server ServerInfo, limits Limits, cats categories.Categories) Capabilities {
	caps := Capabilities{
		Server:     server,
		Limits:     limits,
		Categories: cats,
	}
	for _, kind := range SearchKinds {
		caps.SearchModes = append(caps.SearchModes, SearchMode{
			Key:             kind.ModeKey(),
			Available:       true,
			SupportedParams: SupportedParams(kind),
		})
	}
	return caps
}

// WithoutParams stops advertising the given parameters of a search function.
func (c *Capabilities) WithoutParams(k Kind, params ...string) {
	for i, m := range c.SearchModes {
		if m.Key != k.ModeKey() {
			continue
		}
		kept := m.SupportedParams[:0:0]
		for _, p := range m.SupportedParams {
			if !contains(params, p) {
				kept = append(kept, p)
			}
		}
		c.SearchModes[i].SupportedParams = kept
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// HasSearchMode returns the mode with the given key, if it is available.
func (c Capabilities) HasSearchMode(key string) (bool, []string) {
	for _, m := range c.SearchModes {
		if m.Key == key && m.Available {
			return true, m.SupportedParams
		}
	}
	return false, nil
}

// Supports checks if the function of kind k is advertised.
func (c Capabilities) Supports(k Kind) bool {
	if k == KindCaps {
		return true
	}
	ok, _ := c.HasSearchMode(k.ModeKey())
	return ok
}

func (c Capabilities) HasCategory(id int) bool {
	_, ok := c.Categories[id]
	return ok
}

func (c Capabilities) HasTVShows() bool {
	for _, cat := range c.Categories {
		if cat != nil && categories.ParentCategory(*cat).ID == categories.CategoryTV.ID {
			return true
		}
	}
	return false
}

func (c Capabilities) HasMovies() bool {
	for _, cat := range c.Categories {
		if cat != nil && categories.ParentCategory(*cat).ID == categories.CategoryMovies.ID {
			return true
		}
	}
	return false
}

type capsCategory struct {
	ID      int          `xml:"id,attr"`
	Name    string       `xml:"name,attr"`
	Subcats []capsSubcat `xml:"subcat"`
}

type capsSubcat struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func subcatName(c categories.Category) string {
	if idx := strings.Index(c.Name, "/"); idx >= 0 {
		return c.Name[idx+1:]
	}
	return c.Name
}

// groupedCategories nests every sub category under its parent, ordered by id.
func (c Capabilities) groupedCategories() []capsCategory {
	var out []capsCategory
	index := map[int]int{}
	for _, cat := range c.Categories.WithParents().Items() {
		if cat.IsParent() {
			index[cat.ID] = len(out)
			out = append(out, capsCategory{ID: cat.ID, Name: cat.Name})
			continue
		}
		parent := categories.ParentCategory(*cat)
		pos := index[parent.ID]
		out[pos].Subcats = append(out[pos].Subcats, capsSubcat{ID: cat.ID, Name: subcatName(*cat)})
	}
	return out
}

func (c Capabilities) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	type modeView struct {
		XMLName         xml.Name
		Available       string `xml:"available,attr"`
		SupportedParams string `xml:"supportedParams,attr"`
	}
	modes := make([]modeView, 0, len(c.SearchModes))
	for _, m := range c.SearchModes {
		modes = append(modes, modeView{
			XMLName:         xml.Name{Local: m.Key},
			Available:       yesNo(m.Available),
			SupportedParams: strings.Join(m.SupportedParams, ","),
		})
	}

	capsView := struct {
		XMLName struct{} `xml:"caps"`
		Server  struct {
			Version   string `xml:"version,attr,omitempty"`
			Title     string `xml:"title,attr,omitempty"`
			Strapline string `xml:"strapline,attr,omitempty"`
			Email     string `xml:"email,attr,omitempty"`
			URL       string `xml:"url,attr,omitempty"`
		} `xml:"server"`
		Limits struct {
			Max     int `xml:"max,attr,omitempty"`
			Default int `xml:"default,attr,omitempty"`
		} `xml:"limits"`
		Registration struct {
			Available string `xml:"available,attr"`
			Open      string `xml:"open,attr"`
		} `xml:"registration"`
		Searching  []modeView     `xml:"searching>mode"`
		Categories []capsCategory `xml:"categories>category"`
	}{
		Searching:  modes,
		Categories: c.groupedCategories(),
	}
	capsView.Server.Version = c.Server.Version
	capsView.Server.Title = c.Server.Title
	capsView.Server.Strapline = c.Server.Strapline
	capsView.Server.Email = c.Server.Email
	capsView.Server.URL = c.Server.URL
	capsView.Limits.Max = c.Limits.Max
	capsView.Limits.Default = c.Limits.Default
	capsView.Registration.Available = "no"
	capsView.Registration.Open = "no"

	return e.Encode(capsView)
}
