package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/linguahub/internal/app/system/limits"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// lazyDeps returns DBDeps backed by a client that has not dialed anything.
// Routes that never touch the database can be exercised with it.
func lazyDeps(t *testing.T) DBDeps {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return DBDeps{MongoClient: client, MongoDatabase: client.Database("LinguaGenius")}
}

func TestBuildHandler_Home(t *testing.T) {
	h, err := BuildHandler(&config.CoreConfig{}, validConfig(), lazyDeps(t), zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "Lingua is speaking" {
		t.Errorf("GET /: %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestBuildHandler_CORSPreflight(t *testing.T) {
	h, err := BuildHandler(&config.CoreConfig{}, validConfig(), lazyDeps(t), zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}

	req := httptest.NewRequest("OPTIONS", "/approve-class", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin: got %q", got)
	}
}

func TestBuildHandler_Metrics(t *testing.T) {
	h, err := BuildHandler(&config.CoreConfig{}, validConfig(), lazyDeps(t), zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `linguahub_http_requests_total{method="GET",route="/",status="200"} 1`) {
		t.Errorf("request counter missing from exposition:\n%s", rec.Body.String())
	}
}

func TestBuildHandler_MetricsDisabled(t *testing.T) {
	cfg := validConfig()
	cfg.MetricsEnabled = false
	h, err := BuildHandler(&config.CoreConfig{}, cfg, lazyDeps(t), zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /metrics with metrics off: got %d, want 404", rec.Code)
	}
}

func TestBuildHandler_BodyTooLarge(t *testing.T) {
	h, err := BuildHandler(&config.CoreConfig{}, validConfig(), lazyDeps(t), zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}

	body := `{"classID":"` + strings.Repeat("a", limits.MaxJSONBody) + `"}`
	req := httptest.NewRequest("POST", "/add-class", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status: got %d, want 413", rec.Code)
	}
}

func TestUsesDB(t *testing.T) {
	for dest, want := range map[string]bool{"all": true, "db": true, "log": false, "off": false} {
		if got := usesDB(dest); got != want {
			t.Errorf("usesDB(%q) = %v, want %v", dest, got, want)
		}
	}
}
