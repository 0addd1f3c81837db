package line_tracking

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"tracking-line/dto"
)

// Logger is the diagnostics sink. *logger.BkLogger and *zap.SugaredLogger both satisfy it.
type Logger interface {
	Infow(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

type Encoding string

const (
	EncodingHex    Encoding = "hex"
	EncodingBase64 Encoding = "base64"
)

type Hasher interface {
	Sha256(input string, encoding Encoding) string
}

// Random returns an integer in [min, max]
type Random interface {
	Int(min, max int) int
}

type CookieReader interface {
	GetCookieValues(name string) []string
}

type CookieOptions struct {
	Domain   string
	Path     string
	SameSite http.SameSite
	Secure   bool
	MaxAge   int
	HttpOnly bool
}

type CookieWriter interface {
	SetCookie(name, value string, options *CookieOptions)
}

type EventSource interface {
	GetAllEventData() *dto.EventData
}

// EventSourceFunc adapts a plain function to EventSource
type EventSourceFunc func() *dto.EventData

func (f EventSourceFunc) GetAllEventData() *dto.EventData {
	return f()
}

type ParsedURL struct {
	Href     string
	Protocol string
	Host     string
	Hostname string
	Port     string
	Pathname string
	Search   string
	Hash     string
	// SearchParams holds a string for a parameter given once and a []string otherwise
	SearchParams map[string]interface{}
}

type URLParser interface {
	ParseURL(raw string) (*ParsedURL, error)
}

type RequestOptions struct {
	Method  string
	Headers map[string]string
}

type HTTPResponse struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

const (
	ReasonFailed   = "failed"
	ReasonTimedOut = "timed_out"
	ReasonCanceled = "canceled"
)

// TransportError is returned by an HTTPClient when no response could be read.
type TransportError struct {
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("request %v", e.Reason)
	}
	return fmt.Sprintf("request %v: %v", e.Reason, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type HTTPClient interface {
	SendHttpRequest(ctx context.Context, url string, options *RequestOptions, body []byte) (*HTTPResponse, error)
}

type Clock interface {
	TimestampMillis() int64
}

type ClockFunc func() time.Time

func (f ClockFunc) TimestampMillis() int64 {
	return f().UnixNano() / int64(time.Millisecond)
}

// Capabilities is the set of host functions a Dispatcher runs with.
type Capabilities struct {
	Logger       Logger
	Hasher       Hasher
	Random       Random
	CookieReader CookieReader
	CookieWriter CookieWriter
	EventSource  EventSource
	URLParser    URLParser
	HTTPClient   HTTPClient
	Clock        Clock
}
