// Package htmlsanitize cleans user-supplied HTML before it is stored.
//
// Admin feedback is rendered in the instructor dashboard, so when
// sanitizing is switched on it goes through bluemonday's UGC policy: basic
// formatting survives, scripts, event handlers and javascript: links do not.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

func ugc() *bluemonday.Policy {
	once.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// Sanitize returns s with unsafe markup removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugc().Sanitize(s)
}
