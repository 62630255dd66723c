package representation

import (
	"net/http"
	"strconv"
	"strings"

	"restbucks/internal/entities"
	"restbucks/pkg/hal"
)

const formsETagSuffix = "-forms"

// ETag tags one representation of order. HAL-FORMS documents carry templates the plain
// HAL ones lack, so the two flavours never share a tag.
func ETag(order entities.Order, mediaType string) string {
	tag := strconv.FormatInt(order.Version, 10)
	if mediaType == hal.MediaTypeHALForms {
		tag += formsETagSuffix
	}
	return `"` + tag + `"`
}

// RequestETag tags the representation r negotiates.
func RequestETag(r *http.Request, order entities.Order) string {
	return ETag(order, hal.Negotiate(r.Header.Get("Accept")))
}

// MatchesETag evaluates an If-None-Match header against etag using weak comparison.
func MatchesETag(ifNoneMatch, etag string) bool {
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
