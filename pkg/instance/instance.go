package instance

import "os"

// GetID returns the identifier of this API process for log correlation.
func GetID() string {
	if id := os.Getenv("PANIER_INSTANCE_ID"); id != "" {
		return id
	}
	if id := os.Getenv("DYNO"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
