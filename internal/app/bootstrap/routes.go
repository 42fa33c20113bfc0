// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	classesfeature "github.com/dalemusser/linguahub/internal/app/features/classes"
	healthfeature "github.com/dalemusser/linguahub/internal/app/features/health"
	homefeature "github.com/dalemusser/linguahub/internal/app/features/home"
	instructorsfeature "github.com/dalemusser/linguahub/internal/app/features/instructors"
	selectionsfeature "github.com/dalemusser/linguahub/internal/app/features/selections"
	usersfeature "github.com/dalemusser/linguahub/internal/app/features/users"
	"github.com/dalemusser/linguahub/internal/app/store/audit"
	"github.com/dalemusser/linguahub/internal/app/system/auditlog"
	"github.com/dalemusser/linguahub/internal/app/system/limits"
	"github.com/dalemusser/linguahub/internal/app/system/metrics"
	"github.com/dalemusser/linguahub/internal/app/system/reqlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// Every business route is mounted at the top level, under the exact paths
// existing clients call. Middleware order, outermost first: request id and
// access log, panic recovery, body size cap, CORS, request metrics.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(reqlog.Middleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(limits.MaxJSONBody))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: appCfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{reqlog.Header},
	}).Handler)

	var m *metrics.Metrics
	if appCfg.MetricsEnabled {
		m = metrics.New()
		r.Use(m.Middleware)
	}

	auditLog := newAuditLogger(appCfg, deps, logger)

	homefeature.MountRoutes(r)

	healthfeature.MountRoutes(r, healthfeature.NewHandler(deps.MongoClient, logger))

	classesHandler := classesfeature.NewHandler(deps.MongoDatabase, auditLog, logger)
	classesHandler.PopularLimit = appCfg.PopularLimit
	classesHandler.SanitizeFeedback = appCfg.SanitizeFeedback
	classesfeature.MountRoutes(r, classesHandler)

	instructorsfeature.MountRoutes(r, instructorsfeature.NewHandler(deps.MongoDatabase, logger))

	usersfeature.MountRoutes(r, usersfeature.NewHandler(deps.MongoDatabase, auditLog, logger))

	selectionsfeature.MountRoutes(r, selectionsfeature.NewHandler(deps.MongoDatabase, auditLog, logger))

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	return r, nil
}

// newAuditLogger builds the audit logger. The Mongo-backed store is only
// attached when some category writes to the database.
func newAuditLogger(appCfg AppConfig, deps DBDeps, logger *zap.Logger) *auditlog.Logger {
	cfg := auditlog.Config{
		Admin:    appCfg.AuditLogAdmin,
		Activity: appCfg.AuditLogActivity,
	}

	var store *audit.Store
	if usesDB(cfg.Admin) || usesDB(cfg.Activity) {
		store = audit.New(deps.MongoDatabase)
	}

	logger.Info("audit logging configured",
		zap.String("admin", cfg.Admin),
		zap.String("activity", cfg.Activity),
		zap.Bool("stored", store != nil))
	return auditlog.New(store, logger, cfg)
}

func usesDB(dest string) bool {
	return dest == auditlog.DestAll || dest == auditlog.DestDB
}
