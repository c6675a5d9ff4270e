package utils

import "os"

// ErrDetail returns the raw error text for client responses, except in
// production where internals are not echoed.
func ErrDetail(err error) string {
	if os.Getenv("APP_ENV") == "production" {
		return "internal server error"
	}
	return err.Error()
}
