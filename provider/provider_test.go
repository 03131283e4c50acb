package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kbukum/wonderwords/logger"
)

type stubProvider struct {
	name      string
	available bool
	closeErr  error
	closed    bool
}

func (p *stubProvider) Name() string                       { return p.name }
func (p *stubProvider) IsAvailable(_ context.Context) bool { return p.available }

type closingProvider struct{ *stubProvider }

func (p closingProvider) Close(_ context.Context) error {
	p.closed = true
	return p.closeErr
}

func newManager(priority ...string) *Manager[Provider] {
	return NewManager[Provider](NewRegistry[Provider](), &PrioritySelector[Provider]{Priority: priority}, logger.NewNop())
}

func register(t *testing.T, m *Manager[Provider], p Provider) {
	t.Helper()
	m.Register(p.Name(), func() (Provider, error) { return p, nil })
	if err := m.Initialize(p.Name()); err != nil {
		t.Fatalf("initialize %s: %v", p.Name(), err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry[Provider]()
	r.Register("youtube", func() (Provider, error) { return &stubProvider{name: "youtube"}, nil })
	r.Register("subprocess", func() (Provider, error) { return nil, errors.New("binary missing") })

	p, err := r.Create("youtube")
	if err != nil || p.Name() != "youtube" {
		t.Fatalf("Create: %v, %v", p, err)
	}
	if _, err := r.Create("subprocess"); err == nil || err.Error() != "binary missing" {
		t.Errorf("factory error should pass through, got %v", err)
	}
	if _, err := r.Create("whisper"); err == nil || !strings.Contains(err.Error(), `"whisper"`) {
		t.Errorf("expected unregistered error, got %v", err)
	}

	names := r.Names()
	if len(names) != 2 || names[0] != "subprocess" || names[1] != "youtube" {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestPrioritySelector(t *testing.T) {
	providers := map[string]Provider{
		"youtube":    &stubProvider{name: "youtube", available: false},
		"subprocess": &stubProvider{name: "subprocess", available: true},
	}

	tests := []struct {
		name     string
		priority []string
		want     string
		errPart  string
	}{
		{"skips unavailable", []string{"youtube", "subprocess"}, "subprocess", ""},
		{"skips uninitialized", []string{"whisper", "subprocess"}, "subprocess", ""},
		{"none available", []string{"youtube"}, "", "unavailable: [youtube]"},
		{"none initialized", []string{"whisper"}, "", "is initialized"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &PrioritySelector[Provider]{Priority: tt.priority}
			p, err := s.Select(context.Background(), providers)
			if tt.errPart != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errPart) {
					t.Fatalf("expected error containing %q, got %v", tt.errPart, err)
				}
				return
			}
			if err != nil || p.Name() != tt.want {
				t.Fatalf("expected %s, got %v, %v", tt.want, p, err)
			}
		})
	}
}

func TestManager_GetFollowsAvailability(t *testing.T) {
	m := newManager("youtube", "subprocess")
	primary := &stubProvider{name: "youtube", available: true}
	register(t, m, primary)
	register(t, m, &stubProvider{name: "subprocess", available: true})

	p, err := m.Get(context.Background())
	if err != nil || p.Name() != "youtube" {
		t.Fatalf("expected youtube, got %v, %v", p, err)
	}

	primary.available = false
	p, err = m.Get(context.Background())
	if err != nil || p.Name() != "subprocess" {
		t.Fatalf("expected fallback to subprocess, got %v, %v", p, err)
	}

	if got := m.Available(); len(got) != 2 || got[0] != "subprocess" || got[1] != "youtube" {
		t.Errorf("expected sorted names, got %v", got)
	}
}

func TestManager_InitializeFailure(t *testing.T) {
	m := newManager("subprocess")
	m.Register("subprocess", func() (Provider, error) { return nil, errors.New("binary missing") })

	err := m.Initialize("subprocess")
	if err == nil || !strings.Contains(err.Error(), `initialize provider "subprocess": binary missing`) {
		t.Fatalf("unexpected error %v", err)
	}
	if len(m.Available()) != 0 {
		t.Error("failed provider must not be selectable")
	}
	if _, err := m.Get(context.Background()); err == nil {
		t.Error("expected selection error with no providers")
	}
}

func TestManager_Close(t *testing.T) {
	m := newManager("a", "b", "c")
	ok := closingProvider{&stubProvider{name: "a"}}
	failing := closingProvider{&stubProvider{name: "b", closeErr: errors.New("busy")}}
	register(t, m, ok)
	register(t, m, failing)
	register(t, m, &stubProvider{name: "c"})

	err := m.Close(context.Background())
	if err == nil || !strings.Contains(err.Error(), `close provider "b": busy`) {
		t.Fatalf("expected joined close error, got %v", err)
	}
	if !ok.closed || !failing.closed {
		t.Error("every Closeable provider should be closed")
	}
}
