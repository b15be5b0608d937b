package main

import (
	"github.com/spf13/cobra"
	"podcast-platform/internal/db"
	"podcast-platform/internal/models"
)

func newCreatePodcastCommand() *cobra.Command {
	var podcast models.Podcast

	cmd := &cobra.Command{
		Use:   "create-podcast",
		Short: "Create a podcast",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			podcast.EnsureDefaults()
			if err := db.CreatePodcast(podcast); err != nil {
				return err
			}
			return writeJSON(cmd, podcast)
		},
	}

	cmd.Flags().StringVar(&podcast.Title, "title", "", "Podcast title")
	cmd.Flags().StringVar(&podcast.Author, "author", "", "Podcast author")
	cmd.Flags().StringVar(&podcast.Description, "description", "", "Podcast description")
	cmd.Flags().StringVar(&podcast.FeedURL, "feed-url", "", "Public feed URL")
	cmd.Flags().StringVar(&podcast.ImageURL, "image-url", "", "Cover image URL")
	cmd.Flags().StringVar(&podcast.Category, "category", models.DefaultCategory, "iTunes category")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newListPodcastsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-podcasts",
		Short: "List all podcasts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			podcasts, err := db.ListPodcasts()
			if err != nil {
				return err
			}
			return writeJSON(cmd, podcasts)
		},
	}
}
