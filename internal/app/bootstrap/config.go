// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for LinguaHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, popular_limit, etc.
//   - Environment variables: LINGUA_MONGO_URI, LINGUA_POPULAR_LIMIT, etc.
//   - Command-line flags: --mongo_uri, --popular_limit, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (used when mongo_user/mongo_host are empty)"},
	{Name: "mongo_user", Default: "", Desc: "MongoDB Atlas user; with mongo_host builds a mongodb+srv URI"},
	{Name: "mongo_password", Default: "", Desc: "MongoDB Atlas password"},
	{Name: "mongo_host", Default: "", Desc: "MongoDB Atlas cluster host (e.g., cluster0.abcde.mongodb.net)"},
	{Name: "mongo_database", Default: "LinguaGenius", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_stable_api", Default: true, Desc: "Pin the Stable API v1 (strict, deprecation errors)"},

	// cors_allowed_origins belongs to WAFFLE core, so the app key is shorter.
	{Name: "cors_origins", Default: "*", Desc: "Comma-separated CORS origins"},
	{Name: "metrics_enabled", Default: true, Desc: "Serve Prometheus metrics at /metrics"},

	{Name: "popular_limit", Default: 6, Desc: "Number of classes returned by /popularClasses"},
	{Name: "sanitize_feedback", Default: false, Desc: "Strip unsafe HTML from admin feedback before storing"},

	// Audit logging settings
	{Name: "audit_log_admin", Default: "log", Desc: "Review/role event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_activity", Default: "log", Desc: "User activity event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	{Name: "timeout_ping", Default: "2s", Desc: "Database ping timeout"},
	{Name: "timeout_short", Default: "5s", Desc: "Single-document read/write timeout"},
	{Name: "timeout_medium", Default: "10s", Desc: "Collection scan timeout"},
	{Name: "timeout_long", Default: "30s", Desc: "Long operation timeout"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges flags > env > files > defaults.
// Core and app keys share the LINGUA_ env prefix. Env values arrive as
// strings, so numeric and boolean keys go through cast.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LINGUA", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoUser:        appValues.String("mongo_user"),
		MongoPass:        appValues.String("mongo_password"),
		MongoHost:        appValues.String("mongo_host"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: cast.ToUint64(appValues["mongo_max_pool_size"]),
		MongoStableAPI:   cast.ToBool(appValues["mongo_stable_api"]),

		CORSAllowedOrigins: splitList(appValues.String("cors_origins")),
		MetricsEnabled:     cast.ToBool(appValues["metrics_enabled"]),

		PopularLimit:     cast.ToInt64(appValues["popular_limit"]),
		SanitizeFeedback: cast.ToBool(appValues["sanitize_feedback"]),

		AuditLogAdmin:    appValues.String("audit_log_admin"),
		AuditLogActivity: appValues.String("audit_log_activity"),

		TimeoutPing:   appValues.Duration("timeout_ping", 2*time.Second),
		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
		TimeoutLong:   appValues.Duration("timeout_long", 30*time.Second),
	}
	appCfg.MongoURI = resolveMongoURI(appValues.String("mongo_uri"), appCfg.MongoUser, appCfg.MongoPass, appCfg.MongoHost)

	if appCfg.MongoUser != "" && appCfg.MongoHost != "" {
		logger.Info("using MongoDB Atlas credentials",
			zap.String("host", appCfg.MongoHost),
			zap.String("user", appCfg.MongoUser))
	}

	return coreCfg, appCfg, nil
}

// resolveMongoURI returns a mongodb+srv URI built from user, pass and host
// when user and host are both set, and uri otherwise.
func resolveMongoURI(uri, user, pass, host string) string {
	if user == "" || host == "" {
		return uri
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var validate = validator.New()

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI format is checked first so a bad URI is reported as such
// rather than as a connection failure. The remaining fields are checked
// through the struct tags on AppConfig.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if err := validate.Struct(appCfg); err != nil {
		var fields []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+"("+fe.Tag()+")")
			}
		}
		logger.Error("invalid app config", zap.Strings("fields", fields), zap.Error(err))
		return fmt.Errorf("invalid app config: %w", err)
	}

	return nil
}
