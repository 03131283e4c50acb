package subprocess

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/kbukum/wonderwords/errors"
	"github.com/kbukum/wonderwords/logger"
	"github.com/kbukum/wonderwords/process"
	"github.com/kbukum/wonderwords/transcript"
)

var _ transcript.Resolver = (*Adapter)(nil)

// Adapter runs the CLI once per request.
type Adapter struct {
	proc   *process.Adapter
	config Config
	log    *logger.Logger
}

// New creates an Adapter.
func New(cfg Config, log *logger.Logger) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Adapter{
		proc: process.NewAdapter(process.Config{
			Name:        cfg.Name,
			Binary:      cfg.Binary,
			GracePeriod: cfg.GracePeriod,
			Timeout:     cfg.Timeout,
		}),
		config: cfg,
		log:    log.WithComponent(cfg.Name),
	}, nil
}

func (a *Adapter) Name() string { return a.config.Name }

// IsAvailable reports whether the CLI binary resolves on PATH.
func (a *Adapter) IsAvailable(ctx context.Context) bool {
	return a.proc.IsAvailable(ctx)
}

func (a *Adapter) Execute(ctx context.Context, req transcript.Request) (*transcript.Result, error) {
	return a.Resolve(ctx, req)
}

// Resolve runs `<binary> [args...] --video-id <id> --lang <codes> --json`
// and maps its outcome onto the failure taxonomy.
func (a *Adapter) Resolve(ctx context.Context, req transcript.Request) (*transcript.Result, error) {
	req = transcript.NormalizeRequest(req, a.config.DefaultLanguages)
	if err := transcript.Validate(req); err != nil {
		return nil, err
	}

	res, err := a.proc.Run(ctx, process.Command{Binary: a.config.Binary, Args: a.args(req)})
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return nil, errors.Timeout("subprocess").WithCause(err)
	case stderrors.Is(err, context.Canceled):
		return nil, errors.Canceled().WithCause(err)
	case res == nil:
		a.log.WithContext(ctx).Error("transcript cli failed to start", logger.Fields(
			logger.FieldVideoID, req.VideoID,
			logger.FieldError, err.Error(),
		))
		return nil, errors.Unexpected(err)
	}

	env, parsed := parseEnvelope(res.Stdout)
	switch {
	case parsed && env.Success && res.ExitCode == 0:
		if env.Result.VideoID == "" {
			env.Result.VideoID = req.VideoID
		}
		return env.Result, nil
	case parsed && !env.Success:
		return nil, env.Err()
	case res.ExitCode != 0:
		return nil, errors.Unknown(res.StderrLine(a.config.MaxStderr))
	default:
		return nil, errors.Unexpected(fmt.Errorf("unreadable CLI output: %q", truncate(res.Stdout, 120)))
	}
}

func (a *Adapter) args(req transcript.Request) []string {
	args := append([]string(nil), a.config.Args...)
	return append(args,
		"--video-id", req.VideoID,
		"--lang", strings.Join(req.Languages, ","),
		"--json",
	)
}

// parseEnvelope decodes the CLI envelope. A success envelope must carry a
// result and a failure envelope an error message.
func parseEnvelope(stdout []byte) (transcript.Envelope, bool) {
	var env transcript.Envelope
	if err := json.Unmarshal(bytes.TrimSpace(stdout), &env); err != nil {
		return env, false
	}
	if env.Success {
		return env, env.Result != nil
	}
	return env, env.Error != ""
}

func truncate(b []byte, n int) string {
	b = bytes.TrimSpace(b)
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
