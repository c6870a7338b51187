package config

import (
	"os"
	"path"
	"time"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
)

var appname = "easyznab"

//go:generate mockgen -destination=mocks/mock_config.go -package=mocks . Config
type Config interface {
	GetInt(key string) int
	GetString(key string) string
	GetBool(key string) bool
	GetBytes(key string) []byte
	GetDuration(key string) time.Duration
	Get(key string) interface{}
	IsSet(key string) bool
	Set(key string, value interface{})
}

// Keys of the configuration.
const (
	KeyPort       = "port"
	KeyHostname   = "hostname"
	KeyAPIKey     = "api_key"
	KeyPassphrase = "passphrase"
	KeyVerbose    = "verbose"
	KeyLogLevel   = "log.level"

	KeyEasynewsUsername  = "easynews.username"
	KeyEasynewsPassword  = "easynews.password"
	KeyEasynewsURL       = "easynews.url"
	KeyEasynewsTimeout   = "easynews.timeout"
	KeyEasynewsPageSize  = "easynews.page_size"
	KeyEasynewsProxy     = "easynews.proxy"
	KeyEasynewsDebugHTTP = "easynews.debug_http"

	KeyMetadataEnabled = "metadata.enabled"
	KeyMetadataTimeout = "metadata.timeout"
	KeySeriesFilter    = "search.series_filter"
	KeyPprof           = "server.pprof"

	KeyLogFile       = "log.file"
	KeyLogMaxSize    = "log.max_size_mb"
	KeyLogMaxBackups = "log.max_backups"
	KeyLogMaxAge     = "log.max_age_days"
)

var defaults = map[string]interface{}{
	KeyPort:             8000,
	KeyEasynewsURL:      "https://members.easynews.com/1.0/global5/index.html",
	KeyEasynewsTimeout:  20 * time.Second,
	KeyEasynewsPageSize: 100,
	KeyMetadataEnabled:  true,
	KeyMetadataTimeout:  10 * time.Second,
	KeySeriesFilter:     false,
	KeyPprof:            false,
	KeyLogMaxSize:       50,
	KeyLogMaxBackups:    3,
	KeyLogMaxAge:        28,
}

// SetDefaults fills in every key that wasn't configured.
func SetDefaults(cfg Config) {
	for key, value := range defaults {
		if !cfg.IsSet(key) {
			cfg.Set(key, value)
		}
	}
}

func GetMinLogLevel(c Config) log.Level {
	if c.GetBool(KeyVerbose) {
		return log.DebugLevel
	}
	if lvl, err := log.ParseLevel(c.GetString(KeyLogLevel)); err == nil {
		return lvl
	}
	return log.InfoLevel
}

// GetConfigDir is where the config file lives, ~/.easyznab.
func GetConfigDir() string {
	home, _ := homedir.Dir()
	dir := path.Join(home, "."+appname)
	_ = os.MkdirAll(dir, os.ModePerm)
	return dir
}

func AppName() string {
	return appname
}
