package bootstrap

import (
	"github.com/kbukum/wonderwords/config"
)

// Config is the constraint for application configuration types. A pointer to
// any struct embedding config.ServiceConfig satisfies it through promoted
// methods, as long as the struct redeclares ApplyDefaults/Validate when it
// has sections of its own.
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
