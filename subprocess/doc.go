// Package subprocess resolves transcripts by running the transcript CLI in
// JSON mode and reading its envelope from stdout.
//
// The adapter enforces its own timeout (SIGTERM, then SIGKILL after a grace
// period), validates the request before spawning anything, and preserves the
// failure kind reported by the child so that a "Transcripts are disabled for
// this video" printed by the CLI still becomes a 404.
package subprocess
