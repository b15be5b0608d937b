package feed

import (
	"database/sql"
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"podcast-platform/internal/db"
	"podcast-platform/internal/models"
)

const (
	itunesNS  = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	contentNS = "http://purl.org/rss/1.0/modules/content/"

	// Enclosure byte length is not tracked; podcast apps tolerate 0.
	enclosureType   = "audio/mpeg"
	enclosureLength = "0"
)

type rssRoot struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	ItunesNS  string     `xml:"xmlns:itunes,attr"`
	ContentNS string     `xml:"xmlns:content,attr"`
	Channel   rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string      `xml:"title"`
	Link        string      `xml:"link"`
	Description string      `xml:"description"`
	Language    string      `xml:"language"`
	Author      string      `xml:"itunes:author"`
	Category    rssCategory `xml:"itunes:category"`
	Image       *rssImage   `xml:"itunes:image,omitempty"`
	Items       []rssItem   `xml:"item"`
}

type rssCategory struct {
	Text string `xml:"text,attr"`
}

type rssImage struct {
	Href string `xml:"href,attr"`
}

type rssItem struct {
	Title       string       `xml:"title"`
	Description string       `xml:"description"`
	PubDate     string       `xml:"pubDate"`
	GUID        string       `xml:"guid"`
	Duration    string       `xml:"itunes:duration"`
	EpisodeNum  *int         `xml:"itunes:episode,omitempty"`
	Season      *int         `xml:"itunes:season,omitempty"`
	Enclosure   rssEnclosure `xml:"enclosure"`
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length string `xml:"length,attr"`
}

// GenerateRSS builds an Apple Podcasts-compatible RSS 2.0 feed for the
// podcast. An unknown podcast id yields a diagnostic comment string rather
// than an error; callers that care must check for it.
func GenerateRSS(podcastID string) (string, error) {
	pod, err := db.GetPodcastByID(podcastID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Sprintf("<!-- podcast %s not found -->", podcastID), nil
	}
	if err != nil {
		return "", fmt.Errorf("load podcast: %w", err)
	}

	episodes, err := db.GetPublishedEpisodes(podcastID)
	if err != nil {
		return "", fmt.Errorf("load episodes: %w", err)
	}

	root := rssRoot{
		Version:   "2.0",
		ItunesNS:  itunesNS,
		ContentNS: contentNS,
		Channel: rssChannel{
			Title:       pod.Title,
			Link:        pod.FeedURL,
			Description: pod.Description,
			Language:    pod.Language,
			Author:      pod.Author,
			Category:    rssCategory{Text: pod.Category},
		},
	}
	if pod.ImageURL != "" {
		root.Channel.Image = &rssImage{Href: pod.ImageURL}
	}

	for _, ep := range episodes {
		root.Channel.Items = append(root.Channel.Items, buildItem(ep))
	}

	out, err := xml.Marshal(root)
	if err != nil {
		return "", fmt.Errorf("marshal rss: %w", err)
	}
	return string(out), nil
}

func buildItem(ep models.Episode) rssItem {
	pubDate := ""
	if ep.PublishedAt != nil {
		pubDate = rfc2822(*ep.PublishedAt)
	}
	return rssItem{
		Title:       ep.Title,
		Description: ep.Description,
		PubDate:     pubDate,
		GUID:        ep.ID,
		Duration:    formatDuration(ep.DurationSecs),
		EpisodeNum:  ep.EpisodeNum,
		Season:      ep.Season,
		Enclosure: rssEnclosure{
			URL:    ep.AudioURL,
			Type:   enclosureType,
			Length: enclosureLength,
		},
	}
}

// formatDuration renders whole seconds as HH:MM:SS. Hours grow past two
// digits when needed.
func formatDuration(secs int) string {
	h := secs / 3600
	rem := secs % 3600
	return fmt.Sprintf("%02d:%02d:%02d", h, rem/60, rem%60)
}

var pubDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// rfc2822 converts a stored ISO-8601 timestamp to the RSS pubDate format.
// Unparseable values pass through verbatim so one bad row never fails the
// whole feed.
func rfc2822(iso string) string {
	if iso == "" {
		return ""
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.UTC().Format("Mon, 02 Jan 2006 15:04:05 +0000")
		}
	}
	return iso
}
