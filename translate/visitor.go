package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benkelly/easyznab/easynews"
	"github.com/benkelly/easyznab/newznab"
)

// queryBuilder collects the search terms of one request.
type queryBuilder struct {
	terms           string
	defaultFileType string
}

var _ newznab.Visitor = (*queryBuilder)(nil)

func (b *queryBuilder) VisitCaps(r *newznab.CapsRequest) error {
	return newznab.IncorrectParameter("t", "caps is not a search function")
}

func (b *queryBuilder) VisitSearch(r *newznab.SearchRequest) error {
	b.terms = normalize(r.Query)
	if b.terms == "" {
		return ErrProbe
	}
	return nil
}

func (b *queryBuilder) VisitTVSearch(r *newznab.TVSearchRequest) error {
	b.defaultFileType = easynews.FileTypeVideo
	title := normalize(r.Query)
	if title == "" {
		title = normalize(r.Series)
	}
	episode, err := episodeTag(r.Season, r.Episode)
	if err != nil {
		return err
	}
	if title == "" && episode == "" {
		return newznab.MissingParameter("q", "a show name, season or episode is required")
	}
	b.terms = joinTerms(title, episode)
	return nil
}

func (b *queryBuilder) VisitMovie(r *newznab.MovieRequest) error {
	b.defaultFileType = easynews.FileTypeVideo
	switch {
	case normalize(r.Query) != "":
		b.terms = normalize(r.Query)
	case normalize(r.Title) != "":
		b.terms = joinTerms(r.Title, r.Year)
	case r.NormalizedIMDBID() != "":
		b.terms = r.NormalizedIMDBID()
	default:
		return ErrProbe
	}
	return nil
}

func (b *queryBuilder) VisitMusic(r *newznab.MusicRequest) error {
	b.defaultFileType = easynews.FileTypeAudio
	b.terms = joinTerms(r.Query, r.Artist, r.Album)
	if b.terms == "" {
		return ErrProbe
	}
	return nil
}

// episodeTag formats the season and episode the way release names carry them.
// A four digit season with a month/day episode is a daily show and becomes "YYYY MM DD".
func episodeTag(season, episode string) (string, error) {
	if season == "" && episode == "" {
		return "", nil
	}
	if season == "" {
		return "", newznab.IncorrectParameter("ep", "an episode needs a season")
	}
	s, err := strconv.Atoi(season)
	if err != nil || s < 0 {
		return "", newznab.IncorrectParameter("season", fmt.Sprintf("%q is not a season number", season))
	}
	if episode == "" {
		return fmt.Sprintf("S%02d", s), nil
	}
	if len(season) == 4 && strings.Contains(episode, "/") {
		return dailyTag(s, episode)
	}
	e, err := strconv.Atoi(episode)
	if err != nil || e < 0 {
		return "", newznab.IncorrectParameter("ep", fmt.Sprintf("%q is not an episode number", episode))
	}
	return fmt.Sprintf("S%02dE%02d", s, e), nil
}

func dailyTag(year int, episode string) (string, error) {
	parts := strings.Split(episode, "/")
	if len(parts) != 2 {
		return "", newznab.IncorrectParameter("ep", fmt.Sprintf("%q is not a month/day", episode))
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return "", newznab.IncorrectParameter("ep", fmt.Sprintf("%q is not a month/day", episode))
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return "", newznab.IncorrectParameter("ep", fmt.Sprintf("%q is not a month/day", episode))
	}
	return fmt.Sprintf("%04d %02d %02d", year, month, day), nil
}
