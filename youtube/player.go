package youtube

import (
	"bytes"
	"encoding/json"
	"strings"
)

const playerResponseMarker = "ytInitialPlayerResponse = "

type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer *struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for speech-recognized tracks
}

// captionTracks returns the track list, or ok=false when the page carries no
// caption renderer at all.
func (p *playerResponse) captionTracks() (tracks []captionTrack, ok bool) {
	if p.Captions == nil || p.Captions.PlayerCaptionsTracklistRenderer == nil {
		return nil, false
	}
	return p.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, true
}

// parsePlayerResponse finds and decodes the player response embedded in a
// watch page. found is false when the marker is absent.
func parsePlayerResponse(page []byte) (resp *playerResponse, found bool, err error) {
	idx := bytes.Index(page, []byte(playerResponseMarker))
	if idx < 0 {
		return nil, false, nil
	}
	raw := extractJSON(page[idx+len(playerResponseMarker):])
	if raw == nil {
		return nil, true, errMalformedPlayerResponse
	}
	resp = &playerResponse{}
	if err := json.Unmarshal(raw, resp); err != nil {
		return nil, true, err
	}
	return resp, true, nil
}

// extractJSON returns the JSON object starting at b[0] by tracking brace
// depth outside of string literals.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr, escaped := false, false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}

// isRecaptchaPage reports whether the site answered with a bot challenge
// instead of the watch page.
func isRecaptchaPage(page []byte) bool {
	return bytes.Contains(page, []byte(`class="g-recaptcha"`))
}

func playabilityReason(status, reason string) string {
	var kind string
	switch status {
	case "LOGIN_REQUIRED":
		kind = "login required"
	case "UNPLAYABLE":
		kind = "video unplayable"
	default:
		kind = "video unavailable"
	}
	if reason = strings.TrimSpace(reason); reason != "" {
		return kind + ": " + reason
	}
	return kind
}
