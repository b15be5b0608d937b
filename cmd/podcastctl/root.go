package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"podcast-platform/internal/db"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "podcastctl",
		Short:         "BlackRoad podcast platform CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			return db.InitDB()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return db.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newCreatePodcastCommand())
	rootCmd.AddCommand(newListPodcastsCommand())
	rootCmd.AddCommand(newAddEpisodeCommand())
	rootCmd.AddCommand(newListEpisodesCommand())
	rootCmd.AddCommand(newRSSCommand())
	rootCmd.AddCommand(newOPMLCommand())
	rootCmd.AddCommand(newUpdateStatsCommand())
	rootCmd.AddCommand(newTopEpisodesCommand())
	rootCmd.AddCommand(newStatsCommand())

	return rootCmd
}
