package transcript

import (
	"context"
	"fmt"

	"github.com/kbukum/wonderwords/errors"
	"github.com/kbukum/wonderwords/logger"
	"github.com/kbukum/wonderwords/provider"
)

// Resolver is the contract every backend satisfies: the in-process Service
// and the out-of-process subprocess adapter are interchangeable behind it.
type Resolver = provider.RequestResponse[Request, *Result]

var _ Resolver = (*Service)(nil)

// Service resolves requests against a Source in-process.
type Service struct {
	name   string
	source Source
	config Config
	log    *logger.Logger
}

// NewService creates a Service named name reading from source.
func NewService(name string, source Source, cfg Config, log *logger.Logger) *Service {
	cfg.ApplyDefaults()
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{name: name, source: source, config: cfg, log: log.WithComponent(name)}
}

// Name implements provider.Provider.
func (s *Service) Name() string { return s.name }

// IsAvailable delegates to the source when it can report availability.
func (s *Service) IsAvailable(ctx context.Context) bool {
	if p, ok := s.source.(interface{ IsAvailable(context.Context) bool }); ok {
		return p.IsAvailable(ctx)
	}
	return true
}

// Close releases the source when it holds resources.
func (s *Service) Close(ctx context.Context) error {
	if c, ok := s.source.(interface{ Close(context.Context) error }); ok {
		return c.Close(ctx)
	}
	return nil
}

// Execute implements provider.RequestResponse.
func (s *Service) Execute(ctx context.Context, req Request) (*Result, error) {
	return s.Resolve(ctx, req)
}

// Resolve validates req, then lists, selects and fetches within the
// configured timeout. Exactly one of the returns is non-nil; the error is
// always an *errors.AppError.
func (s *Service) Resolve(ctx context.Context, req Request) (result *Result, err error) {
	req = NormalizeRequest(req, s.config.DefaultLanguages)
	if verr := Validate(req); verr != nil {
		return nil, verr
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			s.log.WithContext(ctx).Error("provider panic recovered", logger.Fields(
				logger.FieldVideoID, req.VideoID,
				logger.FieldError, fmt.Sprint(r),
			))
			result = nil
			err = errors.Unknown(fmt.Sprintf("Unexpected error: %v", r))
		}
	}()

	language, fragments, ferr := FetchDirect(ctx, s.source, req.VideoID, req.Languages)
	if ferr != nil {
		return nil, Classify(ctx, ferr)
	}
	if len(fragments) == 0 {
		return nil, errors.NoTranscriptFound()
	}

	s.log.WithContext(ctx).Debug("transcript resolved", logger.Fields(
		logger.FieldVideoID, req.VideoID,
		logger.FieldLanguage, language,
		"entries_count", len(fragments),
	))
	return NewResult(req.VideoID, language, fragments), nil
}
