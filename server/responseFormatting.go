package server

import (
	"encoding/json"
	"encoding/xml"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"

	"github.com/benkelly/easyznab/newznab"
)

func writeXML(c *gin.Context, v interface{}, contentType string) {
	x, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		newznab.Error(c, http.StatusInternalServerError, err.Error(), newznab.ErrUnknownError)
		return
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = c.Writer.Write([]byte(xml.Header))
	_, _ = c.Writer.Write(x)
}

func capsOutput(c *gin.Context, caps newznab.Capabilities) {
	writeXML(c, caps, "application/xml; charset=utf-8")
}

func xmlOutput(c *gin.Context, feed *newznab.Feed) {
	writeXML(c, feed, "application/rss+xml; charset=utf-8")
}

func atomOutput(c *gin.Context, v *newznab.Feed) {
	feed := &feeds.Feed{
		Id:          v.Info.ID,
		Title:       v.Info.Title,
		Link:        &feeds.Link{Href: v.Info.Link},
		Description: v.Info.Description,
		Created:     time.Now(),
	}
	feed.Items = make([]*feeds.Item, len(v.Items))
	for i, item := range v.Items {
		feed.Items[i] = &feeds.Item{
			Id:          item.GUID,
			Title:       item.Title,
			Link:        &feeds.Link{Href: item.Link, Type: "application/x-nzb", Length: strconv.FormatInt(item.Size, 10)},
			Description: item.Description,
			Author:      &feeds.Author{Name: item.Poster},
			Created:     item.PublishDate,
		}
	}
	atom, err := feed.ToAtom()
	if err != nil {
		newznab.Error(c, http.StatusInternalServerError, err.Error(), newznab.ErrUnknownError)
		return
	}
	c.Header("Content-Type", "application/atom+xml; charset=utf-8")
	c.String(http.StatusOK, atom)
}

type jsonItem struct {
	Title       string    `json:"title"`
	GUID        string    `json:"guid"`
	Link        string    `json:"link"`
	Size        int64     `json:"size"`
	Category    int       `json:"category"`
	Categories  []int     `json:"categories"`
	PublishDate time.Time `json:"pubDate"`
	Group       string    `json:"group,omitempty"`
	Poster      string    `json:"poster,omitempty"`
}

type jsonFeed struct {
	Title  string     `json:"title"`
	Link   string     `json:"link"`
	Offset int        `json:"offset"`
	Total  int        `json:"total"`
	Items  []jsonItem `json:"items"`
}

func jsonOutput(c *gin.Context, v *newznab.Feed) {
	out := jsonFeed{
		Title:  v.Info.Title,
		Link:   v.Info.Link,
		Offset: v.Offset,
		Total:  v.Total,
		Items:  make([]jsonItem, 0, len(v.Items)),
	}
	for _, item := range v.Items {
		ji := jsonItem{
			Title:       item.Title,
			GUID:        item.GUID,
			Link:        item.Link,
			Size:        item.Size,
			Category:    item.Category.ID,
			PublishDate: item.PublishDate,
			Group:       item.Group,
			Poster:      item.Poster,
		}
		for _, attr := range item.Attributes() {
			if attr[0] != "category" {
				continue
			}
			if id, err := strconv.Atoi(attr[1]); err == nil {
				ji.Categories = append(ji.Categories, id)
			}
		}
		out.Items = append(out.Items, ji)
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		newznab.Error(c, http.StatusInternalServerError, err.Error(), newznab.ErrUnknownError)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", append(b, '\n'))
}
