package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	v, c, b := Version, GitCommit, BuildTime
	return func() {
		Version, GitCommit, BuildTime = v, c, b
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version, GitCommit, BuildTime = "dev", "", ""

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
}

func TestGetRelease(t *testing.T) {
	defer saveAndRestore()()
	Version, GitCommit, BuildTime = "1.4.0", "abcdef0123456", "2026-01-02T03:04:05Z"

	info := Get()
	if !info.IsRelease {
		t.Error("expected 1.4.0 to be a release")
	}
	if info.GitCommit != "abcdef0" {
		t.Errorf("expected commit truncated to 7 chars, got %q", info.GitCommit)
	}
	if info.BuildTime != "2026-01-02T03:04:05Z" {
		t.Errorf("unexpected build time %q", info.BuildTime)
	}
	if !strings.HasPrefix(info.String(), "1.4.0 (abcdef0) built 2026-01-02T03:04:05Z") {
		t.Errorf("unexpected string %q", info.String())
	}
}

func TestDirtyVersionIsNotRelease(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0-dirty"
	if Get().IsRelease {
		t.Error("dirty versions are not releases")
	}
}

func TestShort(t *testing.T) {
	defer saveAndRestore()()
	Version, GitCommit = "2.0.0", "1234567"
	if got := Short(); !strings.HasPrefix(got, "2.0.0-1234567") {
		t.Errorf("unexpected short version %q", got)
	}
}
