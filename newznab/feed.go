package newznab

import (
	"encoding/xml"
	"strconv"
	"time"

	"github.com/benkelly/easyznab/categories"
)

const (
	rfc822 = "Mon, 02 Jan 2006 15:04:05 -0700"

	Namespace     = "http://www.newznab.com/DTD/2010/feeds/attributes/"
	atomNamespace = "http://www.w3.org/2005/Atom"
	nzbMimeType   = "application/x-nzb"
)

// Info describes the indexer in the feed channel.
type Info struct {
	ID          string
	Title       string
	Description string
	Link        string
	Language    string
	Category    string
}

type newznabAttrView struct {
	XMLName struct{} `xml:"newznab:attr"`
	Name    string   `xml:"name,attr"`
	Value   string   `xml:"value,attr"`
}

// Item is one release in a result feed.
type Item struct {
	Title       string
	GUID        string
	Link        string
	Comments    string
	Description string
	Category    categories.Category
	PublishDate time.Time
	Size        int64
	Group       string
	Poster      string
}

// PubDate formats the publish date the way RSS wants it.
func (i Item) PubDate() string {
	return i.PublishDate.Format(rfc822)
}

// Attributes returns the newznab:attr pairs of the item, in output order.
func (i Item) Attributes() [][2]string {
	attrs := [][2]string{
		{"category", strconv.Itoa(i.Category.ID)},
	}
	if parent := categories.ParentCategory(i.Category); parent.ID != i.Category.ID {
		attrs = append(attrs, [2]string{"category", strconv.Itoa(parent.ID)})
	}
	attrs = append(attrs,
		[2]string{"size", strconv.FormatInt(i.Size, 10)},
		[2]string{"guid", i.GUID},
		[2]string{"usenetdate", i.PubDate()},
	)
	if i.Group != "" {
		attrs = append(attrs, [2]string{"group", i.Group})
	}
	if i.Poster != "" {
		attrs = append(attrs, [2]string{"poster", i.Poster})
	}
	return attrs
}

func (i Item) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	enclosure := struct {
		URL    string `xml:"url,attr"`
		Length int64  `xml:"length,attr"`
		Type   string `xml:"type,attr"`
	}{
		URL:    i.Link,
		Length: i.Size,
		Type:   nzbMimeType,
	}
	guid := struct {
		Value       string `xml:",chardata"`
		IsPermaLink bool   `xml:"isPermaLink,attr"`
	}{
		Value: i.GUID,
	}
	itemView := struct {
		XMLName     struct{}    `xml:"item"`
		Title       string      `xml:"title"`
		GUID        interface{} `xml:"guid"`
		Link        string      `xml:"link"`
		Comments    string      `xml:"comments,omitempty"`
		PublishDate string      `xml:"pubDate"`
		Category    string      `xml:"category"`
		Description string      `xml:"description,omitempty"`
		Size        int64       `xml:"size"`
		Enclosure   interface{} `xml:"enclosure"`
		Attributes  []newznabAttrView
	}{
		Title:       i.Title,
		GUID:        guid,
		Link:        i.Link,
		Comments:    i.Comments,
		PublishDate: i.PubDate(),
		Category:    i.Category.Name,
		Description: i.Description,
		Size:        i.Size,
		Enclosure:   enclosure,
	}
	for _, attr := range i.Attributes() {
		itemView.Attributes = append(itemView.Attributes, newznabAttrView{Name: attr[0], Value: attr[1]})
	}
	return e.Encode(itemView)
}

// Feed is a newznab search response.
type Feed struct {
	Info   Info
	Items  []Item
	Offset int
	Total  int
}

func (f Feed) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	channelView := struct {
		XMLName     struct{} `xml:"channel"`
		AtomLink    interface{}
		Title       string `xml:"title,omitempty"`
		Description string `xml:"description,omitempty"`
		Link        string `xml:"link,omitempty"`
		Language    string `xml:"language,omitempty"`
		Category    string `xml:"category,omitempty"`
		Response    struct {
			XMLName struct{} `xml:"newznab:response"`
			Offset  int      `xml:"offset,attr"`
			Total   int      `xml:"total,attr"`
		}
		Items []Item
	}{
		AtomLink: struct {
			XMLName struct{} `xml:"atom:link"`
			Href    string   `xml:"href,attr"`
			Rel     string   `xml:"rel,attr"`
			Type    string   `xml:"type,attr"`
		}{Href: f.Info.Link, Rel: "self", Type: "application/rss+xml"},
		Title:       f.Info.Title,
		Description: f.Info.Description,
		Link:        f.Info.Link,
		Language:    f.Info.Language,
		Category:    f.Info.Category,
		Items:       f.Items,
	}
	channelView.Response.Offset = f.Offset
	channelView.Response.Total = f.Total

	return e.Encode(struct {
		XMLName          struct{}    `xml:"rss"`
		Version          string      `xml:"version,attr"`
		NewznabNamespace string      `xml:"xmlns:newznab,attr"`
		AtomNamespace    string      `xml:"xmlns:atom,attr"`
		Channel          interface{} `xml:"channel"`
	}{
		Version:          "2.0",
		NewznabNamespace: Namespace,
		AtomNamespace:    atomNamespace,
		Channel:          channelView,
	})
}
