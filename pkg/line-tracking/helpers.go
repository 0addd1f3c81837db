package line_tracking

import (
	"github.com/spf13/cast"
	"regexp"
	"strings"
)

var hashedPattern = regexp.MustCompile(HashedRegexPattern)

const hexDigits = "0123456789abcdef"

// getLineClickId returns the click id of a LINE ad, taken from the ldtag_cl query parameter.
func getLineClickId(u *ParsedURL) string {
	if u == nil {
		return ""
	}
	switch params := u.SearchParams[ClickIdQueryName].(type) {
	case []string:
		if len(params) > 0 {
			return params[0]
		}
	case []interface{}:
		if len(params) > 0 {
			return cast.ToString(params[0])
		}
	case string:
		return params
	}
	return ""
}

// generateUuid builds a version 4 layout identifier from the host random source.
func generateUuid(r Random) string {
	template := []byte("xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx")
	for i, c := range template {
		switch c {
		case 'x':
			template[i] = hexDigits[r.Int(0, 15)&0xf]
		case 'y':
			template[i] = hexDigits[8+r.Int(0, 3)&0x3]
		}
	}
	return string(template)
}

func sha256HashIfNeeded(h Hasher, value string) string {
	if value == "" {
		return ""
	}
	if hashedPattern.MatchString(value) {
		return strings.ToLower(value)
	}
	return h.Sha256(strings.ToLower(strings.TrimSpace(value)), EncodingHex)
}

func isStandardEvent(eventName string) bool {
	for _, e := range LineStandardEvents {
		if e == eventName {
			return true
		}
	}
	return false
}

type statusClass int

const (
	statusUnknown statusClass = iota
	statusValid
	statusBadRequest
	statusInternalError
)

// classifyStatus checks 2xx, then 4xx, then 5xx. Everything else, 1xx and 3xx included, is unknown.
func classifyStatus(statusCode int) statusClass {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return statusValid
	case statusCode >= 400 && statusCode < 500:
		return statusBadRequest
	case statusCode >= 500 && statusCode < 600:
		return statusInternalError
	default:
		return statusUnknown
	}
}
