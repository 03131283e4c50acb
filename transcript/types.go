package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Request is the transport-agnostic input of a resolution.
type Request struct {
	VideoID   string   `json:"video_id" validate:"required"`
	Languages []string `json:"languages"`
}

// Fields implements provider.Fielder.
func (r Request) Fields() map[string]any {
	return map[string]any{
		"video_id":  r.VideoID,
		"languages": r.Languages,
	}
}

// Fragment is one timed caption unit. Start and Duration are in seconds.
type Fragment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Result is a resolved transcript.
type Result struct {
	VideoID      string `json:"video_id"`
	Language     string `json:"language"`
	Text         string `json:"text"`
	Length       int    `json:"length"`
	EntriesCount int    `json:"entries_count"`

	// Fragments is kept for plain-text rendering and never serialized.
	Fragments []Fragment `json:"-"`
}

// NewResult joins fragment texts with a single space, in order and without
// trimming, and counts the characters of the joined text.
func NewResult(videoID, language string, fragments []Fragment) *Result {
	texts := make([]string, len(fragments))
	for i, f := range fragments {
		texts[i] = f.Text
	}
	text := strings.Join(texts, " ")
	return &Result{
		VideoID:      videoID,
		Language:     language,
		Text:         text,
		Length:       utf8.RuneCountInString(text),
		EntriesCount: len(fragments),
		Fragments:    fragments,
	}
}

// Fields implements provider.Fielder.
func (r *Result) Fields() map[string]any {
	return map[string]any{
		"language":      r.Language,
		"entries_count": r.EntriesCount,
		"length":        r.Length,
	}
}

// Track is one caption track of a video as enumerated by a Source.
type Track interface {
	LanguageCode() string
	// Generated reports whether the track was produced by speech recognition.
	Generated() bool
	Fetch(ctx context.Context) ([]Fragment, error)
}

// Source enumerates the caption tracks of a video, in the platform's order.
//
// Implementations report the two platform conditions with
// ErrTranscriptsDisabled and ErrNoTranscriptFound, and retrieval faults
// (network, parsing, blocked video) with *RetrievalError.
type Source interface {
	ListTranscripts(ctx context.Context, videoID string) ([]Track, error)
}

var (
	// ErrTranscriptsDisabled means the video has captions turned off.
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	// ErrNoTranscriptFound means the video has no caption track at all.
	ErrNoTranscriptFound = errors.New("no transcript found for this video")
)

// RetrievalError is a fault of the retrieval layer.
type RetrievalError struct {
	VideoID string
	Reason  string
	Err     error
}

func (e *RetrievalError) Error() string {
	switch {
	case e.Err != nil && e.Reason != "":
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Reason
	}
}

func (e *RetrievalError) Unwrap() error { return e.Err }
