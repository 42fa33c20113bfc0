// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (LINGUA_*), configuration
// files, or command-line flags, loaded in LoadConfig. WAFFLE's CoreConfig
// still owns the framework settings: listen port, TLS, log level and
// request body limits.
//
// Struct tags are checked by ValidateConfig.
type AppConfig struct {
	// MongoDB connection. MongoURI is the resolved URI: when MongoUser and
	// MongoHost are set it is built from them, otherwise it is mongo_uri.
	MongoURI         string `validate:"required"`
	MongoUser        string
	MongoPass        string
	MongoHost        string
	MongoDatabase    string `validate:"required"`
	MongoMaxPoolSize uint64 `validate:"gte=1"`
	MongoStableAPI   bool   // Stable API v1, strict, deprecation errors

	// HTTP surface
	CORSAllowedOrigins []string `validate:"min=1,dive,required"`
	MetricsEnabled     bool

	// Domain behavior
	PopularLimit     int64 `validate:"gte=1"`
	SanitizeFeedback bool

	// Audit destinations: all | db | log | off
	AuditLogAdmin    string `validate:"oneof=all db log off"`
	AuditLogActivity string `validate:"oneof=all db log off"`

	// Handler timeouts
	TimeoutPing   time.Duration `validate:"gt=0"`
	TimeoutShort  time.Duration `validate:"gt=0"`
	TimeoutMedium time.Duration `validate:"gt=0"`
	TimeoutLong   time.Duration `validate:"gt=0"`
}
