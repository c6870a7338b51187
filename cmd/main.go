package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benkelly/easyznab/config"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

var configFile string

var rootCmd = &cobra.Command{
	Use:     "easyznab",
	Short:   "Serves Easynews global search as a Newznab indexer.",
	Version: version,
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	verbose := false
	flags.StringVarP(&configFile, "config", "c", "", "The config file to use. Defaults to ~/.easyznab/easyznab.yaml")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug output.")
	_ = viper.BindPFlag(config.KeyVerbose, flags.Lookup("verbose"))
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
