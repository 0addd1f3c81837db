package line_tracking

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"github.com/punky97/go-codebase/core/logger"
	"io/ioutil"
	"math/big"
	mathrand "math/rand"
	"net"
	"net/http"
	"net/url"
	"time"
	"tracking-line/dto"
	"tracking-line/pkg/utils"
)

const defaultClientTimeout = 30 // seconds

// DefaultCapabilities wires the process-wide implementations. Cookies and event data are
// bound to a single exchange, so callers replace them per invocation.
func DefaultCapabilities() Capabilities {
	timeout := utils.ViperGetIntWithDefault("http_client.timeout", defaultClientTimeout)
	return Capabilities{
		Logger:       logger.BkLog,
		Hasher:       sha256Hasher{},
		Random:       cryptoRandom{},
		CookieReader: noCookies{},
		CookieWriter: noCookies{},
		EventSource:  EventSourceFunc(func() *dto.EventData { return &dto.EventData{} }),
		URLParser:    netURLParser{},
		HTTPClient:   NewHTTPClient(time.Duration(timeout) * time.Second),
		Clock:        ClockFunc(time.Now),
	}
}

type sha256Hasher struct{}

func (sha256Hasher) Sha256(input string, encoding Encoding) string {
	sum := sha256.Sum256([]byte(input))
	if encoding == EncodingBase64 {
		return base64.StdEncoding.EncodeToString(sum[:])
	}
	return hex.EncodeToString(sum[:])
}

type cryptoRandom struct{}

func (cryptoRandom) Int(min, max int) int {
	if max <= min {
		return min
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
	if err != nil {
		logger.BkLog.Warnf("crypto/rand unavailable, fallback to math/rand: %v", err)
		return min + mathrand.Intn(max-min+1)
	}
	return min + int(n.Int64())
}

type noCookies struct{}

func (noCookies) GetCookieValues(string) []string { return nil }

func (noCookies) SetCookie(string, string, *CookieOptions) {}

type netURLParser struct{}

// ParseURL returns the pairs that did parse along with the error when the query is malformed,
// e.g. when it contains a semicolon.
func (netURLParser) ParseURL(raw string) (*ParsedURL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	query, err := url.ParseQuery(u.RawQuery)
	params := make(map[string]interface{})
	for k, vs := range query {
		if len(vs) == 1 {
			params[k] = vs[0]
		} else {
			params[k] = vs
		}
	}

	parsed := &ParsedURL{
		Href:         u.String(),
		Protocol:     u.Scheme,
		Host:         u.Host,
		Hostname:     u.Hostname(),
		Port:         u.Port(),
		Pathname:     u.Path,
		SearchParams: params,
	}
	if u.RawQuery != "" {
		parsed.Search = "?" + u.RawQuery
	}
	if u.Fragment != "" {
		parsed.Hash = "#" + u.Fragment
	}
	return parsed, err
}

type httpClient struct {
	client *http.Client
}

// NewHTTPClient returns an HTTPClient over a pooled net/http transport.
func NewHTTPClient(timeout time.Duration) HTTPClient {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxConnsPerHost = 100
	t.MaxIdleConnsPerHost = 100

	return &httpClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: t,
		},
	}
}

func (c *httpClient) SendHttpRequest(ctx context.Context, url string, options *RequestOptions, body []byte) (*HTTPResponse, error) {
	logContext := logger.LoggerCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, options.Method, url, bytes.NewBuffer(body))
	if err != nil {
		logContext.Errorw("Error create request",
			"err", err.Error())
		return nil, &TransportError{Reason: ReasonFailed, Err: err}
	}
	for k, v := range options.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	res, err := c.client.Do(req)
	timeLog(start, "do http request")
	if err != nil {
		return nil, &TransportError{Reason: transportReason(err), Err: err}
	}
	defer res.Body.Close()

	raw, err := ioutil.ReadAll(res.Body)
	if err != nil {
		logContext.Errorw("Error read body",
			"extra_readable_info", err.Error())
	}

	return &HTTPResponse{
		StatusCode: res.StatusCode,
		Body:       raw,
		Headers:    res.Header,
	}, nil
}

func transportReason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimedOut
	}
	if errors.Is(err, context.Canceled) {
		return ReasonCanceled
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ReasonTimedOut
	}
	return ReasonFailed
}

func timeLog(ts time.Time, task string) {
	elapsed := time.Since(ts)
	if elapsed < 200*time.Millisecond {
		return
	}
	logger.BkLog.Infof("%v took %v", task, elapsed)
}
