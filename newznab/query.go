package newznab

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Parameters the search functions accept. The caps document is built from this table.
var supportedParams = map[Kind][]string{
	KindSearch:   {"q"},
	KindTVSearch: {"q", "season", "ep", "tvdbid", "tvmazeid", "rid", "imdbid"},
	KindMovie:    {"q", "imdbid"},
	KindMusic:    {"q", "artist", "album"},
}

// ShowIDParams identify the show of a tv search. They are only useful with an id lookup.
var ShowIDParams = []string{"tvdbid", "tvmazeid", "rid", "imdbid"}

// SearchKinds are the search functions, in the order they're advertised.
var SearchKinds = []Kind{KindSearch, KindTVSearch, KindMovie, KindMusic}

// SupportedParams lists the parameters a search function understands.
func SupportedParams(k Kind) []string {
	params := supportedParams[k]
	out := make([]string, len(params))
	copy(out, params)
	return out
}

func supports(k Kind, param string) bool {
	for _, p := range supportedParams[k] {
		if p == param {
			return true
		}
	}
	return false
}

type params struct {
	kind    Kind
	values  map[string]string
	common  Common
	rawKind string
	hasKind bool
	ignored []string
}

func single(k string, vals []string) (string, error) {
	if len(vals) > 1 {
		return "", IncorrectParameter(k, fmt.Sprintf("multiple %s parameters not allowed", k))
	}
	return strings.TrimSpace(vals[0]), nil
}

// ParseRequest takes the query string parameters of a newznab call and builds the request variant for `t`.
func ParseRequest(v url.Values) (Request, error) {
	p := &params{values: map[string]string{}}

	for k, vals := range v {
		if len(vals) == 0 {
			continue
		}
		k = strings.ToLower(k)
		switch k {
		case "t":
			val, err := single(k, vals)
			if err != nil {
				return nil, err
			}
			p.rawKind = val
			p.hasKind = true

		case "q", "artist", "album":
			p.values[k] = strings.Join(vals, " ")

		case "season", "ep", "tvdbid", "tvmazeid", "rid", "imdbid":
			val, err := single(k, vals)
			if err != nil {
				return nil, err
			}
			p.values[k] = val

		case "limit", "offset":
			val, err := single(k, vals)
			if err != nil {
				return nil, err
			}
			if val == "" {
				continue
			}
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return nil, IncorrectParameter(k, fmt.Sprintf("%q is not a non-negative number", val))
			}
			if k == "limit" {
				p.common.Limit = n
			} else {
				p.common.Offset = n
			}

		case "extended":
			val, err := single(k, vals)
			if err != nil {
				return nil, err
			}
			extended, err := strconv.ParseBool(val)
			if err != nil {
				return nil, IncorrectParameter(k, fmt.Sprintf("%q is not a boolean", val))
			}
			p.common.Extended = extended

		case "cat":
			for _, val := range vals {
				ints, err := splitInts(val, ",")
				if err != nil {
					return nil, IncorrectParameter(k, fmt.Sprintf("unable to parse cats %q", val))
				}
				p.common.Categories = append(p.common.Categories, ints...)
			}

		case "apikey", "format", "o", "attrs":

		default:
			p.ignored = append(p.ignored, k)
		}
	}

	if !p.hasKind || p.rawKind == "" {
		return nil, MissingParameter("t", "no function given")
	}
	kind, ok := ParseKind(p.rawKind)
	if !ok {
		return nil, NoSuchFunction(p.rawKind)
	}
	p.kind = kind
	p.warnUnsupported()
	return p.build(), nil
}

func (p *params) warnUnsupported() {
	for k := range p.values {
		if !supports(p.kind, k) {
			p.ignored = append(p.ignored, k)
		}
	}
	if len(p.ignored) > 0 {
		log.WithFields(log.Fields{"t": p.kind, "params": p.ignored}).
			Debug("Ignoring parameters the function doesn't support")
	}
}

func (p *params) get(k string) string {
	if !supports(p.kind, k) {
		return ""
	}
	return p.values[k]
}

func (p *params) build() Request {
	switch p.kind {
	case KindSearch:
		return &SearchRequest{Common: p.common, Query: p.get("q")}
	case KindTVSearch:
		return &TVSearchRequest{
			Common:   p.common,
			Query:    p.get("q"),
			Season:   p.get("season"),
			Episode:  p.get("ep"),
			TVDBID:   p.get("tvdbid"),
			TVMazeID: p.get("tvmazeid"),
			TVRageID: p.get("rid"),
			IMDBID:   p.get("imdbid"),
		}
	case KindMovie:
		return &MovieRequest{Common: p.common, Query: p.get("q"), IMDBID: p.get("imdbid")}
	case KindMusic:
		return &MusicRequest{Common: p.common, Query: p.get("q"), Artist: p.get("artist"), Album: p.get("album")}
	}
	return &CapsRequest{}
}

// Encode turns a request back into newznab query parameters.
func Encode(r Request) url.Values {
	v := url.Values{}
	v.Set("t", string(r.Kind()))
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	switch req := r.(type) {
	case *SearchRequest:
		set("q", req.Query)
	case *TVSearchRequest:
		set("q", req.Query)
		set("season", req.Season)
		set("ep", req.Episode)
		set("tvdbid", req.TVDBID)
		set("tvmazeid", req.TVMazeID)
		set("rid", req.TVRageID)
		set("imdbid", req.IMDBID)
	case *MovieRequest:
		set("q", req.Query)
		set("imdbid", req.IMDBID)
	case *MusicRequest:
		set("q", req.Query)
		set("artist", req.Artist)
		set("album", req.Album)
	}
	base := r.Base()
	if base.Offset != 0 {
		v.Set("offset", strconv.Itoa(base.Offset))
	}
	if base.Limit != 0 {
		v.Set("limit", strconv.Itoa(base.Limit))
	}
	if base.Extended {
		v.Set("extended", "1")
	}
	if len(base.Categories) > 0 {
		cats := make([]string, 0, len(base.Categories))
		for _, cat := range base.Categories {
			cats = append(cats, strconv.Itoa(cat))
		}
		v.Set("cat", strings.Join(cats, ","))
	}
	return v
}

func splitInts(s, delim string) (i []int, err error) {
	for _, v := range strings.Split(s, delim) {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		vInt, err := strconv.Atoi(v)
		if err != nil {
			return i, err
		}
		i = append(i, vInt)
	}
	return i, err
}
