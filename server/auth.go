package server

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"fmt"
)

// sharedKey gets the api key, or the hash of the passphrase, configured for the server.
// If neither is given, a random key nobody knows is used, so every search is refused.
func (s *Server) sharedKey() []byte {
	switch {
	case len(s.Params.APIKey) > 0:
		return s.Params.APIKey
	case s.Params.Passphrase != "":
		hash := sha1.Sum([]byte(s.Params.Passphrase))
		return []byte(fmt.Sprintf("%x", hash[0:16]))
	}
	s.logger.Warn("No api_key or passphrase configured, searches will be refused")
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return []byte(fmt.Sprintf("%x", b))
}

func (s *Server) checkAPIKey(inputKey string) bool {
	if inputKey == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(inputKey), s.key) == 1 {
		return true
	}
	s.logger.Warn("Incorrect api key")
	return false
}
