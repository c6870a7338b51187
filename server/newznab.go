package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/benkelly/easyznab/easynews"
	"github.com/benkelly/easyznab/newznab"
)

func (s *Server) newznabHandler(c *gin.Context) {
	t := c.Query("t")
	if t == "" {
		query := c.Request.URL.Query()
		query.Set("t", "caps")
		http.Redirect(c.Writer, c.Request, c.Request.URL.Path+"?"+query.Encode(), http.StatusTemporaryRedirect)
		return
	}

	apiKey := c.Query("apikey")
	if !s.checkAPIKey(apiKey) {
		newznab.Error(c, http.StatusUnauthorized, "Invalid apikey parameter", newznab.ErrIncorrectUserCreds)
		return
	}
	if kind, ok := newznab.ParseKind(t); ok && kind == newznab.KindCaps {
		capsOutput(c, s.searcher.Capabilities())
		return
	}

	format := c.Query("format")
	switch format {
	case "", "xml", "atom", "json":
	default:
		newznab.Error(c, http.StatusBadRequest, "Unknown format "+format, newznab.ErrIncorrectParameter)
		return
	}

	req, err := newznab.ParseRequest(c.Request.URL.Query())
	if err != nil {
		s.searchError(c, err)
		return
	}
	feed, err := s.searcher.Search(c.Request.Context(), req)
	if err != nil {
		s.searchError(c, err)
		return
	}

	switch format {
	case "atom":
		atomOutput(c, feed)
	case "json":
		jsonOutput(c, feed)
	default:
		xmlOutput(c, feed)
	}
}

// searchError reports a failed search with the status and newznab code matching its cause.
func (s *Server) searchError(c *gin.Context, err error) {
	var reqErr *newznab.RequestError
	switch {
	case errors.As(err, &reqErr):
		newznab.Error(c, http.StatusBadRequest, reqErr.Error(), reqErr.Code())
	case newznab.IsBadRequest(err):
		newznab.Error(c, http.StatusBadRequest, err.Error(), newznab.ErrIncorrectParameter)
	case easynews.IsUnauthorized(err):
		s.logger.WithError(err).Error("Easynews refused the configured account")
		newznab.Error(c, http.StatusForbidden, "Easynews rejected the configured credentials", newznab.ErrInsufficientPrivs)
	case easynews.IsUpstream(err), errors.Is(err, context.DeadlineExceeded):
		s.logger.WithError(err).Error("Easynews search failed")
		newznab.Error(c, http.StatusBadGateway, "Easynews search failed: "+err.Error(), newznab.ErrUnknownError)
	case errors.Is(err, context.Canceled):
		s.logger.WithFields(log.Fields{"path": c.Request.URL.Path}).Debug("Client went away")
	default:
		s.logger.WithError(err).Error("Search failed")
		newznab.Error(c, http.StatusInternalServerError, err.Error(), newznab.ErrUnknownError)
	}
}
