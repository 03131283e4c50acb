package process

import (
	"bytes"
	"time"
)

// Result holds the output and status of a subprocess.
type Result struct {
	Stdout []byte
	Stderr []byte
	// ExitCode is -1 when the process was killed by a signal.
	ExitCode int
	Duration time.Duration
}

// StderrLine returns the last non-empty line of stderr, truncated to max
// bytes. Tools usually print their final diagnostic last.
func (r *Result) StderrLine(max int) string {
	if r == nil {
		return ""
	}
	lines := bytes.Split(bytes.TrimSpace(r.Stderr), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		line := bytes.TrimSpace(lines[i])
		if len(line) == 0 {
			continue
		}
		if max > 0 && len(line) > max {
			line = line[:max]
		}
		return string(line)
	}
	return ""
}
