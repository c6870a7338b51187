package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benkelly/easyznab/config"
	"github.com/benkelly/easyznab/server"
)

func init() {
	cmdServe := &cobra.Command{
		Use:   "serve",
		Short: "Runs the Newznab server.",
		Run:   serve,
	}
	port := 8000
	hostname := ""
	pprof := false
	cmdFlags := cmdServe.Flags()
	cmdFlags.IntVarP(&port, "port", "p", 8000, "The port to listen on.")
	cmdFlags.StringVar(&hostname, "hostname", "", "The address to listen on. Empty means every interface.")
	cmdFlags.BoolVar(&pprof, "pprof", false, "Expose the profiling handlers under /debug/pprof.")
	_ = viper.BindPFlag(config.KeyPort, cmdFlags.Lookup("port"))
	_ = viper.BindPFlag(config.KeyHostname, cmdFlags.Lookup("hostname"))
	_ = viper.BindPFlag(config.KeyPprof, cmdFlags.Lookup("pprof"))
	rootCmd.AddCommand(cmdServe)
}

func serve(_ *cobra.Command, _ []string) {
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
	rserver := server.NewServer(ix, server.Params{
		APIKey:     settings.APIKey,
		Passphrase: settings.Passphrase,
		Version:    version,
		Pprof:      settings.Pprof,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rserver.Listen(ctx, settings.Address()); err != nil {
		log.Errorf("Server stopped: %v", err)
		os.Exit(1)
	}
}
