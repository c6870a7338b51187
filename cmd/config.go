package main

import (
	"errors"
	"io"
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/benkelly/easyznab/config"
)

var appConfig config.ViperConfig

func initConfig() {
	// A .env next to the binary is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warningf("error while reading .env: %v\n", err)
	}
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(config.GetConfigDir())
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(config.AppName())
	}
	viper.SetEnvPrefix(strings.ToUpper(config.AppName()))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// The names the docker images have always used.
	_ = viper.BindEnv(config.KeyEasynewsUsername, "EASYNEWS_USER", "EASYZNAB_EASYNEWS_USERNAME")
	_ = viper.BindEnv(config.KeyEasynewsPassword, "EASYNEWS_PASS", "EASYZNAB_EASYNEWS_PASSWORD")
	_ = viper.BindEnv(config.KeyAPIKey, "PROXY_API_KEY", "EASYZNAB_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warningf("error while reading config file: %v\n", err)
			os.Exit(1)
		}
	} else {
		log.WithField("file", viper.ConfigFileUsed()).Debug("Using config file")
	}
	config.SetDefaults(&appConfig)
	setupLogging(&appConfig)
}

// setupLogging sets the level and, if a log file is configured, rotates it with lumberjack.
func setupLogging(cfg config.Config) {
	log.SetLevel(config.GetMinLogLevel(cfg))
	logFile := cfg.GetString(config.KeyLogFile)
	if logFile == "" {
		return
	}
	if !path.IsAbs(logFile) {
		logFile = path.Join(config.GetConfigDir(), logFile)
	}
	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    cfg.GetInt(config.KeyLogMaxSize),
		MaxBackups: cfg.GetInt(config.KeyLogMaxBackups),
		MaxAge:     cfg.GetInt(config.KeyLogMaxAge),
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, rotator))
}
