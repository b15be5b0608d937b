package main

import (
	"github.com/spf13/cobra"
	"podcast-platform/internal/db"
)

func newUpdateStatsCommand() *cobra.Command {
	var listens, downloads int

	cmd := &cobra.Command{
		Use:   "update-stats <episode-id>",
		Short: "Record a listens/downloads measurement for an episode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			receipt, err := db.RecordEpisodeStats(args[0], listens, downloads)
			if err != nil {
				return err
			}
			return writeJSON(cmd, receipt)
		},
	}

	cmd.Flags().IntVar(&listens, "listens", 0, "Listen count for this measurement")
	cmd.Flags().IntVar(&downloads, "downloads", 0, "Download count for this measurement")

	return cmd
}

func newTopEpisodesCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top-episodes <podcast-id>",
		Short: "Rank a podcast's episodes by lifetime listens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			top, err := db.GetTopEpisodes(args[0], limit)
			if err != nil {
				return err
			}
			return writeJSON(cmd, top)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of episodes to return")

	return cmd
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <podcast-id>",
		Short: "Show episode count and summed listens/downloads for a podcast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := db.GetPodcastStats(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, stats)
		},
	}
}
