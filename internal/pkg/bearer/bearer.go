// Package bearer normalizes the Authorization header. Tokens are accepted
// with or without the "Bearer " prefix and always forwarded with it.
package bearer

import (
	"net/http"
	"strings"
)

const prefix = "Bearer "

func FromHeader(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, strings.TrimSpace(prefix)) {
		return ""
	}
	if len(value) >= len(prefix) && strings.EqualFold(value[:len(prefix)], prefix) {
		value = value[len(prefix):]
	}
	return strings.TrimSpace(value)
}

func FromRequest(r *http.Request) string {
	return FromHeader(r.Header.Get("Authorization"))
}

func Header(token string) string {
	return prefix + token
}
