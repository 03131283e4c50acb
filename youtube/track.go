package youtube

import (
	"context"
	"encoding/xml"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/kbukum/wonderwords/transcript"
)

var markupPattern = regexp.MustCompile(`<[^>]*>`)

type timedText struct {
	Texts []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Body  string `xml:",chardata"`
	} `xml:"text"`
}

// track is one caption track of a watch page.
type track struct {
	source    *Source
	videoID   string
	code      string
	generated bool
	url       string
}

var _ transcript.Track = (*track)(nil)

func newTrack(s *Source, videoID string, ct captionTrack) *track {
	return &track{
		source:    s,
		videoID:   videoID,
		code:      ct.LanguageCode,
		generated: ct.Kind == "asr",
		url:       strings.Replace(ct.BaseURL, "&fmt=srv3", "", 1),
	}
}

func (t *track) LanguageCode() string { return t.code }
func (t *track) Generated() bool      { return t.generated }

// Fetch downloads and decodes the timed-text document of the track.
func (t *track) Fetch(ctx context.Context) ([]transcript.Fragment, error) {
	if needsPoToken(t.url) {
		return nil, &transcript.RetrievalError{
			VideoID: t.videoID,
			Reason:  "caption track " + t.code + " requires a PO token",
		}
	}
	body, err := t.source.get(ctx, t.videoID, "GET caption track", t.url, nil)
	if err != nil {
		return nil, err
	}
	fragments, err := parseTimedText(body)
	if err != nil {
		return nil, &transcript.RetrievalError{VideoID: t.videoID, Reason: "parse caption track", Err: err}
	}
	return fragments, nil
}

// needsPoToken reports whether a caption URL can only be fetched by a browser.
func needsPoToken(url string) bool {
	return strings.Contains(url, "&exp=xpe")
}

// parseTimedText decodes <text start dur> elements. Entities are unescaped
// and inline markup removed; whitespace inside a fragment is kept. Elements
// without text are skipped.
func parseTimedText(data []byte) ([]transcript.Fragment, error) {
	var doc timedText
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	fragments := make([]transcript.Fragment, 0, len(doc.Texts))
	for _, el := range doc.Texts {
		if el.Body == "" {
			continue
		}
		fragments = append(fragments, transcript.Fragment{
			Text:     markupPattern.ReplaceAllString(html.UnescapeString(el.Body), ""),
			Start:    parseSeconds(el.Start),
			Duration: parseSeconds(el.Dur),
		})
	}
	return fragments, nil
}

func parseSeconds(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
