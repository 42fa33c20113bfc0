// internal/app/system/limits/limits.go
package limits

// Request body size limits.
const (
	// MaxJSONBody caps every request body. It matches the 100 KB JSON body
	// limit existing clients were built against; larger bodies get a 413.
	MaxJSONBody = 100 << 10
)
