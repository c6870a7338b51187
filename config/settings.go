package config

import (
	"fmt"
	"strings"
	"time"
)

// MaxPageSize is the largest page Easynews serves.
const MaxPageSize = 100

// EasynewsSettings configure the upstream search.
type EasynewsSettings struct {
	URL       string
	Username  string
	Password  string
	Timeout   time.Duration
	PageSize  int
	Proxy     string
	DebugHTTP string
}

// LogSettings configure the optional rotating log file.
type LogSettings struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Settings is everything the server needs, read once at startup.
type Settings struct {
	Port            int
	Hostname        string
	APIKey          []byte
	Passphrase      string
	Easynews        EasynewsSettings
	MetadataEnabled bool
	MetadataTimeout time.Duration
	SeriesFilter    bool
	Pprof           bool
	Log             LogSettings
}

// Load reads and validates the settings.
func Load(c Config) (*Settings, error) {
	s := &Settings{
		Port:       c.GetInt(KeyPort),
		Hostname:   c.GetString(KeyHostname),
		APIKey:     c.GetBytes(KeyAPIKey),
		Passphrase: c.GetString(KeyPassphrase),
		Easynews: EasynewsSettings{
			URL:       c.GetString(KeyEasynewsURL),
			Username:  c.GetString(KeyEasynewsUsername),
			Password:  c.GetString(KeyEasynewsPassword),
			Timeout:   c.GetDuration(KeyEasynewsTimeout),
			PageSize:  c.GetInt(KeyEasynewsPageSize),
			Proxy:     c.GetString(KeyEasynewsProxy),
			DebugHTTP: strings.ToLower(c.GetString(KeyEasynewsDebugHTTP)),
		},
		MetadataEnabled: c.GetBool(KeyMetadataEnabled),
		MetadataTimeout: c.GetDuration(KeyMetadataTimeout),
		SeriesFilter:    c.GetBool(KeySeriesFilter),
		Pprof:           c.GetBool(KeyPprof),
		Log: LogSettings{
			File:       c.GetString(KeyLogFile),
			MaxSizeMB:  c.GetInt(KeyLogMaxSize),
			MaxBackups: c.GetInt(KeyLogMaxBackups),
			MaxAgeDays: c.GetInt(KeyLogMaxAge),
		},
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("%s %d is out of range", KeyPort, s.Port)
	}
	if s.Easynews.PageSize <= 0 || s.Easynews.PageSize > MaxPageSize {
		return fmt.Errorf("%s must be between 1 and %d, got %d", KeyEasynewsPageSize, MaxPageSize, s.Easynews.PageSize)
	}
	if s.Easynews.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyEasynewsTimeout)
	}
	if s.MetadataEnabled && s.MetadataTimeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyMetadataTimeout)
	}
	switch s.Easynews.DebugHTTP {
	case "", "1", "true", "basic", "body":
	default:
		return fmt.Errorf("unknown value for %s: %q", KeyEasynewsDebugHTTP, s.Easynews.DebugHTTP)
	}
	return nil
}

// Address is the host:port the server listens on.
func (s *Settings) Address() string {
	return fmt.Sprintf("%s:%d", s.Hostname, s.Port)
}
