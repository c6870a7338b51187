package main

import (
	"encoding/xml"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/benkelly/easyznab/config"
)

func init() {
	cmdCaps := &cobra.Command{
		Use:   "caps",
		Short: "Prints the capabilities document the server advertises.",
		Run:   capsCommand,
	}
	rootCmd.AddCommand(cmdCaps)
}

func capsCommand(_ *cobra.Command, _ []string) {
	settings, err := config.Load(&appConfig)
	if err != nil {
		log.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}
	ix, err := newIndexer(settings)
	if err != nil {
		log.Errorf("Couldn't initialize: %v", err)
		os.Exit(1)
	}
	x, err := xml.MarshalIndent(ix.Capabilities(), "", "  ")
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	fmt.Println(xml.Header + string(x))
}
