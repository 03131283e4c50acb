package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/wonderwords/logger"
	"github.com/kbukum/wonderwords/transcript"
)

type track struct {
	code  string
	texts []string
}

func (t track) LanguageCode() string { return t.code }
func (t track) Generated() bool      { return false }
func (t track) Fetch(context.Context) ([]transcript.Fragment, error) {
	out := make([]transcript.Fragment, len(t.texts))
	for i, s := range t.texts {
		out[i] = transcript.Fragment{Text: s}
	}
	return out, nil
}

type source struct {
	tracks []transcript.Track
	err    error
}

func (s source) ListTranscripts(context.Context, string) ([]transcript.Track, error) {
	return s.tracks, s.err
}

func factory(src source, got *options) resolverFactory {
	return func(opts options, log *logger.Logger) (transcript.Resolver, error) {
		if got != nil {
			*got = opts
		}
		return transcript.NewService("fake", src, transcript.Config{Timeout: opts.timeout}, log), nil
	}
}

func run(t *testing.T, src source, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut, factory(src, nil))
	return code, out.String(), errOut.String()
}

var rickroll = source{tracks: []transcript.Track{
	track{code: "en", texts: []string{"Never", "gonna\ngive", "<you> & up"}},
}}

func TestJSONSuccess(t *testing.T) {
	code, stdout, _ := run(t, rickroll, "--video-id", "dQw4w9WgXcQ", "--json")
	require.Equal(t, 0, code)
	assert.Equal(t,
		`{"success":true,"video_id":"dQw4w9WgXcQ","language":"en","text":"Never gonna`+"\\n"+`give <you> & up","length":27,"entries_count":3}`+"\n",
		stdout)
}

func TestJSONFailure(t *testing.T) {
	code, stdout, stderr := run(t, source{err: transcript.ErrTranscriptsDisabled}, "--video-id", "abc", "--json")
	assert.Equal(t, 1, code)
	assert.JSONEq(t, `{"success":false,"error":"Transcripts are disabled for this video"}`, stdout)
	assert.NotContains(t, stderr, "Error:")

	var env transcript.Envelope
	require.NoError(t, json.Unmarshal([]byte(stdout), &env))
	assert.Equal(t, 404, transcript.StatusCode(env.Err()))
}

func TestJSONMissingID(t *testing.T) {
	code, stdout, _ := run(t, rickroll, "--video-id", "", "--json")
	assert.Equal(t, 1, code)
	assert.JSONEq(t, `{"success":false,"error":"Missing video_id parameter"}`, stdout)
}

func TestPlainSuccess(t *testing.T) {
	code, stdout, stderr := run(t, rickroll, "--video-id", "dQw4w9WgXcQ")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Transcript for dQw4w9WgXcQ (lang: en)", lines[0])
	assert.Equal(t, strings.Repeat("-", 60), lines[1])
	assert.Equal(t, []string{"Never", "gonna give", "<you> & up"}, lines[2:])
}

func TestPlainFailure(t *testing.T) {
	code, stdout, stderr := run(t, source{err: transcript.ErrNoTranscriptFound}, "--video-id", "abc")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: No transcript found for this video\n", stderr)
}

func TestFlags(t *testing.T) {
	var got options
	var out, errOut bytes.Buffer
	code := execute([]string{"--video-id", "abc", "--lang", "de,fr", "--lang", "en", "--timeout", "5s"},
		&out, &errOut, factory(rickroll, &got))
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, []string{"de", "fr", "en"}, got.langs)
	assert.Equal(t, "5s", got.timeout.String())
	assert.Contains(t, out.String(), "(lang: en)")
}

func TestLanguagesAfterFlag(t *testing.T) {
	src := source{tracks: []transcript.Track{
		track{code: "fr", texts: []string{"bonjour"}},
		track{code: "de", texts: []string{"hallo"}},
	}}
	tests := []struct {
		name  string
		args  []string
		langs []string
		want  string
	}{
		{"space separated", []string{"--lang", "en", "de"}, []string{"en", "de"}, "de"},
		{"mixed forms", []string{"--lang", "en,it", "de"}, []string{"en", "it", "de"}, "de"},
		{"positional only", []string{"de"}, []string{"de"}, "de"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got options
			var out, errOut bytes.Buffer
			args := append([]string{"--video-id", "abc"}, tt.args...)
			code := execute(args, &out, &errOut, factory(src, &got))
			require.Equal(t, 0, code, errOut.String())
			assert.Equal(t, tt.langs, got.langs)
			assert.Contains(t, out.String(), "(lang: "+tt.want+")")
		})
	}
}

func TestMissingVideoIDFlag(t *testing.T) {
	code, _, stderr := run(t, rickroll)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `required flag(s) "video-id" not set`)
}

func TestVersionCommand(t *testing.T) {
	code, stdout, _ := run(t, rickroll, "version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "transcript "))
}
