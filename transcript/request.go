package transcript

import (
	"strings"

	"github.com/kbukum/wonderwords/errors"
	"github.com/kbukum/wonderwords/validation"
)

// DefaultLanguages is used when neither the request nor the config name any.
var DefaultLanguages = []string{"en"}

// ParseLanguages splits comma-separated values into language codes,
// trimming blanks and dropping empty entries. Order is preserved.
func ParseLanguages(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, code := range strings.Split(v, ",") {
			if code = strings.TrimSpace(code); code != "" {
				out = append(out, code)
			}
		}
	}
	return out
}

// NormalizeRequest trims the video id, drops empty language codes and
// applies defaults when no language is left.
func NormalizeRequest(req Request, defaults []string) Request {
	out := Request{
		VideoID:   strings.TrimSpace(req.VideoID),
		Languages: ParseLanguages(req.Languages...),
	}
	if len(out.Languages) == 0 {
		if len(defaults) == 0 {
			defaults = DefaultLanguages
		}
		out.Languages = append([]string(nil), defaults...)
	}
	return out
}

// Validate rejects a request before any provider call. Only the video id is
// checked; unknown language codes miss in SelectTrack and fall back.
func Validate(req Request) error {
	if strings.TrimSpace(req.VideoID) == "" {
		return errors.MissingVideoID()
	}
	return validation.Validate(req)
}
