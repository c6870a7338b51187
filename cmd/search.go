package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/benkelly/easyznab/config"
	"github.com/benkelly/easyznab/newznab"
)

func init() {
	cmdSearch := &cobra.Command{
		Use:   "search [query]",
		Short: "Runs a newznab search against Easynews and prints the results.",
		Args:  cobra.MaximumNArgs(1),
		Run:   searchCommand,
	}
	cmdFlags := cmdSearch.Flags()
	cmdFlags.StringP("type", "t", "search", "The newznab function: search, tvsearch, movie or music.")
	cmdFlags.String("season", "", "Season of a tv search.")
	cmdFlags.String("ep", "", "Episode of a tv search.")
	cmdFlags.String("imdbid", "", "IMDB id of a movie or show.")
	cmdFlags.String("tvdbid", "", "TVDB id of a show.")
	cmdFlags.String("tvmazeid", "", "TVMaze id of a show.")
	cmdFlags.String("artist", "", "Artist of a music search.")
	cmdFlags.String("album", "", "Album of a music search.")
	cmdFlags.String("cat", "", "Comma separated category ids.")
	cmdFlags.Int("limit", 0, "The number of results to show.")
	cmdFlags.Int("offset", 0, "The number of results to skip.")
	rootCmd.AddCommand(cmdSearch)
}

// searchValues turns the flags into the query string a newznab client would send.
func searchValues(c *cobra.Command, args []string) url.Values {
	v := url.Values{}
	v.Set("t", c.Flag("type").Value.String())
	if len(args) > 0 {
		v.Set("q", args[0])
	}
	for _, name := range []string{"season", "ep", "imdbid", "tvdbid", "tvmazeid", "artist", "album", "cat"} {
		if val := c.Flag(name).Value.String(); val != "" {
			v.Set(name, val)
		}
	}
	for _, name := range []string{"limit", "offset"} {
		if val := c.Flag(name).Value.String(); val != "0" {
			v.Set(name, val)
		}
	}
	return v
}

func searchCommand(c *cobra.Command, args []string) {
	settings, err := config.Load(&appConfig)
	if err != nil {
		log.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}
	req, err := newznab.ParseRequest(searchValues(c, args))
	if err != nil {
		log.Errorf("Invalid search: %v", err)
		os.Exit(1)
	}
	ix, err := newIndexer(settings)
	if err != nil {
		log.Errorf("Couldn't initialize: %v", err)
		os.Exit(1)
	}
	feed, err := ix.Search(context.Background(), req)
	if err != nil {
		log.Errorf("Couldn't get results: %v", err)
		os.Exit(1)
	}

	tabWr := new(tabwriter.Writer)
	tabWr.Init(os.Stdout, 0, 8, 1, '\t', 0)
	_, _ = fmt.Fprintf(tabWr, "Category\tSize\tPosted\tTitle\n")
	for _, item := range feed.Items {
		_, _ = fmt.Fprintf(tabWr, "%s\t%s\t%s\t%s\n",
			strconv.Itoa(item.Category.ID),
			humanize.Bytes(uint64(item.Size)),
			humanize.Time(item.PublishDate),
			item.Title)
	}
	_ = tabWr.Flush()
	fmt.Printf("%d of %d results, offset %d\n", len(feed.Items), feed.Total, feed.Offset)
}
