package main

import (
	"github.com/spf13/cobra"
	"podcast-platform/internal/db"
	"podcast-platform/internal/models"
)

func newAddEpisodeCommand() *cobra.Command {
	var episode models.Episode
	var publishedAt string
	var season, episodeNum int

	cmd := &cobra.Command{
		Use:   "add-episode <podcast-id>",
		Short: "Add an episode to a podcast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			episode.PodcastID = args[0]
			if cmd.Flags().Changed("published-at") {
				episode.PublishedAt = &publishedAt
			}
			if cmd.Flags().Changed("season") {
				episode.Season = &season
			}
			if cmd.Flags().Changed("episode-num") {
				episode.EpisodeNum = &episodeNum
			}
			episode.EnsureDefaults()
			if err := db.CreateEpisode(episode); err != nil {
				return err
			}
			return writeJSON(cmd, episode)
		},
	}

	cmd.Flags().StringVar(&episode.Title, "title", "", "Episode title")
	cmd.Flags().StringVar(&episode.Description, "description", "", "Episode description")
	cmd.Flags().StringVar(&episode.AudioURL, "audio-url", "", "Audio file URL")
	cmd.Flags().IntVar(&episode.DurationSecs, "duration", 0, "Duration in whole seconds")
	cmd.Flags().StringVar(&publishedAt, "published-at", "", "Publish timestamp (ISO-8601); unpublished if omitted")
	cmd.Flags().IntVar(&season, "season", 0, "Season number")
	cmd.Flags().IntVar(&episodeNum, "episode-num", 0, "Episode number")
	cmd.Flags().BoolVar(&episode.Explicit, "explicit", false, "Mark the episode as explicit")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newListEpisodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-episodes <podcast-id>",
		Short: "List a podcast's episodes, newest published first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			episodes, err := db.ListEpisodesByPodcastID(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, episodes)
		},
	}
}
