// Package version exposes build metadata set at compile time:
//
//	go build -ldflags "-X github.com/kbukum/wonderwords/version.Version=1.2.0"
package version
