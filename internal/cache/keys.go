package cache

import "strings"

const (
	GlobalKeyPrefix = "rurallearn"

	sessionNamespace = "session"
)

// GenerateCacheKey joins the global prefix, service, object type and
// identifier with ":".
func GenerateCacheKey(serviceName, objectType, identifier string) string {
	return strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
}

// SessionKey is the key of one visitor's state for a screen, e.g.
// "rurallearn:session:quiz:<visitor>".
func SessionKey(screen, visitorID string) string {
	return GenerateCacheKey(sessionNamespace, screen, visitorID)
}
