package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"podcast-platform/internal/feed"
)

func newRSSCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rss <podcast-id>",
		Short: "Generate the RSS 2.0 feed for a podcast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rss, err := feed.GenerateRSS(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rss)
			return nil
		},
	}
}

func newOPMLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "opml",
		Short: "Export all podcasts as an OPML subscription list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opml, err := feed.ExportOPML()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opml)
			return nil
		},
	}
}
