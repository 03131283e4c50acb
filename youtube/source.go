package youtube

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/kbukum/wonderwords/httpclient"
	"github.com/kbukum/wonderwords/logger"
	"github.com/kbukum/wonderwords/transcript"
)

var errMalformedPlayerResponse = stderrors.New("unterminated player response")

// consentCookie skips the EU cookie consent interstitial.
var consentCookie = &http.Cookie{Name: "CONSENT", Value: "YES+cb"}

// Source lists caption tracks from watch pages.
type Source struct {
	client *httpclient.Client
	config Config
	log    *logger.Logger
}

var _ transcript.Source = (*Source)(nil)

// New creates a Source.
func New(cfg Config, log *logger.Logger) (*Source, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := httpclient.New(httpclient.Config{
		BaseURL:          cfg.BaseURL,
		Timeout:          cfg.Timeout,
		UserAgent:        cfg.UserAgent,
		Headers:          map[string]string{"Accept-Language": cfg.AcceptLanguage},
		MaxResponseBytes: cfg.MaxResponseBytes,
	})
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Source{client: client, config: cfg, log: log.WithComponent("youtube")}, nil
}

// ListTranscripts fetches the watch page of videoID and returns its caption
// tracks in page order.
func (s *Source) ListTranscripts(ctx context.Context, videoID string) ([]transcript.Track, error) {
	page, err := s.get(ctx, videoID, "GET watch page", "/watch", map[string]string{"v": videoID})
	if err != nil {
		return nil, err
	}

	player, found, err := parsePlayerResponse(page)
	switch {
	case err != nil:
		return nil, &transcript.RetrievalError{VideoID: videoID, Reason: "decode player response", Err: err}
	case !found && isRecaptchaPage(page):
		return nil, &transcript.RetrievalError{VideoID: videoID, Reason: "too many requests"}
	case !found:
		return nil, &transcript.RetrievalError{VideoID: videoID, Reason: "player response not found in watch page"}
	}

	if ps := player.PlayabilityStatus; ps != nil && ps.Status != "" && ps.Status != "OK" {
		return nil, &transcript.RetrievalError{VideoID: videoID, Reason: playabilityReason(ps.Status, ps.Reason)}
	}

	captions, ok := player.captionTracks()
	if !ok {
		return nil, transcript.ErrTranscriptsDisabled
	}
	if len(captions) == 0 {
		return nil, transcript.ErrNoTranscriptFound
	}

	tracks := make([]transcript.Track, len(captions))
	for i, ct := range captions {
		tracks[i] = newTrack(s, videoID, ct)
	}
	s.log.WithContext(ctx).Debug("caption tracks listed", logger.Fields(
		logger.FieldVideoID, videoID,
		"tracks", len(tracks),
	))
	return tracks, nil
}

// IsAvailable implements provider.Provider. The source needs no local
// resources, so it is always available.
func (s *Source) IsAvailable(context.Context) bool { return true }

// Close releases idle connections.
func (s *Source) Close(context.Context) error {
	s.client.Close()
	return nil
}

func (s *Source) get(ctx context.Context, videoID, op, path string, query map[string]string) ([]byte, error) {
	resp, err := s.client.Get(ctx, httpclient.Request{
		Path:    path,
		Query:   query,
		Cookies: []*http.Cookie{consentCookie},
	})
	if err != nil {
		return nil, retrievalError(videoID, op, err)
	}
	return resp.Body, nil
}

// retrievalError converts an httpclient failure. Request timeouts wrap
// context.DeadlineExceeded so they classify as Timeout.
func retrievalError(videoID, op string, err error) error {
	switch {
	case stderrors.Is(err, context.Canceled):
		return &transcript.RetrievalError{VideoID: videoID, Reason: op, Err: err}
	case httpclient.IsTimeout(err):
		return &transcript.RetrievalError{VideoID: videoID, Reason: op + ": " + err.Error(), Err: context.DeadlineExceeded}
	case httpclient.IsRateLimit(err):
		return &transcript.RetrievalError{VideoID: videoID, Reason: "too many requests"}
	default:
		return &transcript.RetrievalError{VideoID: videoID, Reason: op, Err: err}
	}
}
