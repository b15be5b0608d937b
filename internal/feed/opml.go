package feed

import (
	"encoding/xml"
	"fmt"

	"podcast-platform/internal/db"
)

const opmlTitle = "BlackRoad Podcast Subscriptions"

type opmlRoot struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    opmlHead `xml:"head"`
	Body    opmlBody `xml:"body"`
}

type opmlHead struct {
	Title string `xml:"title"`
}

type opmlBody struct {
	Outlines []opmlOutline `xml:"outline"`
}

type opmlOutline struct {
	Type        string `xml:"type,attr"`
	Text        string `xml:"text,attr"`
	Title       string `xml:"title,attr"`
	XMLURL      string `xml:"xmlUrl,attr"`
	Description string `xml:"description,attr"`
}

// ExportOPML lists every podcast as an RSS outline, alphabetical by title,
// for import into other podcast apps. Zero podcasts yields a valid document
// with an empty body.
func ExportOPML() (string, error) {
	podcasts, err := db.ListPodcasts()
	if err != nil {
		return "", fmt.Errorf("list podcasts: %w", err)
	}

	root := opmlRoot{
		Version: "2.0",
		Head:    opmlHead{Title: opmlTitle},
	}
	for _, pod := range podcasts {
		root.Body.Outlines = append(root.Body.Outlines, opmlOutline{
			Type:        "rss",
			Text:        pod.Title,
			Title:       pod.Title,
			XMLURL:      pod.FeedURL,
			Description: pod.Description,
		})
	}

	out, err := xml.Marshal(root)
	if err != nil {
		return "", fmt.Errorf("marshal opml: %w", err)
	}
	return string(out), nil
}
