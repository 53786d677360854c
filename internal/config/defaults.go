package config

import "time"

// Built-in fallback values applied when no other configuration source sets
// the field.
const (
	// DefaultHTTPAddress is the port the application historically served on.
	DefaultHTTPAddress = ":3000"

	// DefaultRequestTimeout bounds every inbound request, including its
	// database work.
	DefaultRequestTimeout = 15 * time.Second

	// DefaultSessionTTL is how long a login session stays valid without an
	// explicit logout.
	DefaultSessionTTL = 24 * time.Hour

	// DefaultEngine is the storage backend assumed when none is configured.
	DefaultEngine = "postgres"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionTTL: DefaultSessionTTL,
		},
		Storage: Storage{
			DB: DB{
				Engine: DefaultEngine,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
