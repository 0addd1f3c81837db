package line_tracking

import (
	"context"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"math/rand"
	"time"
	"tracking-line/dto"
)

type suffixHasher struct{}

func (suffixHasher) Sha256(input string, _ Encoding) string {
	return input + "_sha256hashed"
}

type seededRandom struct {
	r *rand.Rand
}

func (s *seededRandom) Int(min, max int) int {
	return min + s.r.Intn(max-min+1)
}

type setCookieCall struct {
	name    string
	value   string
	options *CookieOptions
}

type fakeCookies struct {
	values []string
	set    []setCookieCall
}

func (f *fakeCookies) GetCookieValues(string) []string {
	return f.values
}

func (f *fakeCookies) SetCookie(name, value string, options *CookieOptions) {
	f.set = append(f.set, setCookieCall{name: name, value: value, options: options})
}

type fakeHTTPClient struct {
	calls   int
	url     string
	options *RequestOptions
	body    []byte

	res *HTTPResponse
	err error
}

func (f *fakeHTTPClient) SendHttpRequest(_ context.Context, url string, options *RequestOptions, body []byte) (*HTTPResponse, error) {
	f.calls++
	f.url = url
	f.options = options
	f.body = body
	return f.res, f.err
}

type callCounter struct {
	count int
}

func (c *callCounter) call() {
	c.count++
}

type harness struct {
	dispatcher *Dispatcher
	cookies    *fakeCookies
	client     *fakeHTTPClient
	logs       *observer.ObservedLogs
	eventData  *dto.EventData
	success    *callCounter
	failure    *callCounter
}

var fixedNow = time.Date(2022, 10, 1, 12, 0, 0, 0, time.UTC)

func newHarness(statusCode int) *harness {
	core, logs := observer.New(zap.InfoLevel)
	h := &harness{
		cookies: &fakeCookies{},
		client:  &fakeHTTPClient{res: &HTTPResponse{StatusCode: statusCode}},
		logs:    logs,
		eventData: &dto.EventData{
			PageReferrer: "http://referrer.example.com",
			PageTitle:    "Page Title",
			PageLocation: "http://example.com",
			IpOverride:   "127.0.0.1",
			UserAgent:    "Chrome",
		},
		success: &callCounter{},
		failure: &callCounter{},
	}
	h.dispatcher = NewDispatcher(Capabilities{
		Logger:       zap.New(core).Sugar(),
		Hasher:       suffixHasher{},
		Random:       &seededRandom{r: rand.New(rand.NewSource(42))},
		CookieReader: h.cookies,
		CookieWriter: h.cookies,
		EventSource:  EventSourceFunc(func() *dto.EventData { return h.eventData }),
		URLParser:    netURLParser{},
		HTTPClient:   h.client,
		Clock:        ClockFunc(func() time.Time { return fixedNow }),
	})
	return h
}

func (h *harness) config(event string) *dto.TagConfig {
	return &dto.TagConfig{
		Event:        event,
		LineTagId:    "00000000-0000-0000-0000-000000000000",
		AccessToken:  "dummyAccessToken",
		ChannelId:    "dummyChannelId",
		EnableCookie: true,
		OnSuccess:    h.success.call,
		OnFailure:    h.failure.call,
	}
}
