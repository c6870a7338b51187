package easynews

import (
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/bcampbell/fuzzytime"
	"github.com/dustin/go-humanize"
	"golang.org/x/net/html/charset"
)

// Result is one file returned by the global search.
type Result struct {
	// ID identifies the file at Easynews. It is the feed guid, or the download url when there is none.
	ID          string
	Subject     string
	Filename    string
	Extension   string
	Size        int64
	Posted      time.Time
	DownloadURL string
	Groups      []string
	Poster      string
	Tags        []string
	Description string
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Length string `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	GUID        string        `xml:"guid"`
	PubDate     string        `xml:"pubDate"`
	Description string        `xml:"description"`
	Author      string        `xml:"author"`
	Categories  []string      `xml:"category"`
	Enclosure   *rssEnclosure `xml:"enclosure"`
}

type rssDocument struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

// ParseFeed reads an Easynews RSS search response.
// A result missing its subject, download url, date or size fails the whole response.
func ParseFeed(r io.Reader) ([]Result, error) {
	var doc rssDocument
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	d.Entity = xml.HTMLEntity
	if err := d.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding search feed: %v", err)
	}

	results := make([]Result, 0, len(doc.Channel.Items))
	for i, item := range doc.Channel.Items {
		res, err := parseItem(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func missing(field string) error {
	return fmt.Errorf("%w %q", ErrMissingField, field)
}

func parseItem(item rssItem) (Result, error) {
	res := Result{
		Subject: strings.TrimSpace(item.Title),
		Poster:  strings.TrimSpace(item.Author),
	}
	if res.Subject == "" {
		return res, missing("title")
	}

	if item.Enclosure != nil {
		res.DownloadURL = strings.TrimSpace(item.Enclosure.URL)
	}
	if res.DownloadURL == "" {
		res.DownloadURL = strings.TrimSpace(item.Link)
	}
	if res.DownloadURL == "" {
		return res, missing("link")
	}

	res.ID = strings.TrimSpace(item.GUID)
	if res.ID == "" {
		res.ID = res.DownloadURL
	}

	pubDate := strings.TrimSpace(item.PubDate)
	if pubDate == "" {
		return res, missing("pubDate")
	}
	posted, err := parseDate(pubDate)
	if err != nil {
		return res, err
	}
	res.Posted = posted

	desc, err := parseDescription(item.Description)
	if err != nil {
		return res, err
	}
	res.Description = desc.Text
	res.Groups = desc.Groups
	if res.Poster == "" {
		res.Poster = desc.Poster
	}

	if item.Enclosure != nil && item.Enclosure.Length != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(item.Enclosure.Length), 10, 64); err == nil && n > 0 {
			res.Size = n
		}
	}
	if res.Size == 0 && desc.Size != "" {
		n, err := humanize.ParseBytes(strings.ReplaceAll(desc.Size, ",", ""))
		if err != nil {
			return res, fmt.Errorf("size %q: %v", desc.Size, err)
		}
		res.Size = int64(n)
	}
	if res.Size == 0 {
		return res, missing("size")
	}

	for _, c := range item.Categories {
		if c = strings.TrimSpace(c); c != "" {
			res.Tags = append(res.Tags, c)
		}
	}

	res.Filename = desc.Filename
	if res.Filename == "" {
		res.Filename = quotedPart(res.Subject)
	}
	res.Extension = extension(res.Filename)
	return res, nil
}

var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC3339,
}

// parseDate reads the RSS date, falling back to fuzzy parsing for anything with a full date.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	dt, _, err := fuzzytime.USContext.Extract(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("error extracting date from %q: %v", s, err)
	}
	if !dt.HasFullDate() {
		return time.Time{}, fmt.Errorf("found only partial date %q", s)
	}
	if dt.Time.Empty() {
		dt.Time.SetHour(0)
		dt.Time.SetMinute(0)
	}
	if !dt.Time.HasSecond() {
		dt.Time.SetSecond(0)
	}
	if !dt.HasTZOffset() {
		dt.Time.SetTZOffset(0)
	}
	t, err := time.Parse("2006-01-02T15:04:05Z07:00", dt.ISOFormat())
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing date %q: %v", s, err)
	}
	return t, nil
}

type description struct {
	Text     string
	Size     string
	Groups   []string
	Poster   string
	Filename string
}

var groupSeparators = regexp.MustCompile(`[\s,]+`)

// parseDescription pulls the labelled fields out of the html description Easynews attaches to every item.
func parseDescription(src string) (description, error) {
	var desc description
	if strings.TrimSpace(src) == "" {
		return desc, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return desc, fmt.Errorf("description: %v", err)
	}

	lines := textLines(doc.Selection, nil)
	desc.Text = strings.Join(lines, "\n")
	for _, line := range lines {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(line[idx+1:])
		switch strings.ToLower(strings.TrimSpace(line[:idx])) {
		case "size":
			desc.Size = value
		case "group", "groups", "newsgroup", "newsgroups":
			for _, g := range groupSeparators.Split(value, -1) {
				if g != "" {
					desc.Groups = append(desc.Groups, g)
				}
			}
		case "poster", "from":
			desc.Poster = value
		case "file", "filename":
			desc.Filename = value
		}
	}
	return desc, nil
}

// textLines collects the non-empty text nodes below sel in document order.
func textLines(sel *goquery.Selection, lines []string) []string {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "#text" {
			if t := strings.TrimSpace(s.Text()); t != "" {
				lines = append(lines, t)
			}
			return
		}
		lines = textLines(s, lines)
	})
	return lines
}

func quotedPart(subject string) string {
	first := strings.Index(subject, `"`)
	if first < 0 {
		return ""
	}
	second := strings.Index(subject[first+1:], `"`)
	if second <= 0 {
		return ""
	}
	return subject[first+1 : first+1+second]
}

var extensionPattern = regexp.MustCompile(`^[a-z0-9]{1,5}$`)

func extension(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(strings.TrimSpace(filename)), "."))
	if !extensionPattern.MatchString(ext) {
		return ""
	}
	return ext
}
