// internal/app/bootstrap/port.go
package bootstrap

import (
	"os"
)

const (
	// DefaultPort is used when PORT is unset.
	DefaultPort = "5000"

	// httpPortEnv is WAFFLE's core http_port under the LINGUA_ prefix.
	httpPortEnv = "LINGUA_HTTP_PORT"
)

// BridgePort copies the conventional PORT variable (or DefaultPort) into
// WAFFLE's HTTP port setting. An explicit LINGUA_HTTP_PORT wins. It returns
// the port that will be used.
//
// Call it after loading .env and before app.Run.
func BridgePort() string {
	if p := os.Getenv(httpPortEnv); p != "" {
		return p
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	_ = os.Setenv(httpPortEnv, port)
	return port
}
