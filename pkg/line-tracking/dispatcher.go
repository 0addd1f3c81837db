package line_tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"tracking-line/dto"
)

const (
	FailureBadRequest     = "BadRequest"
	FailureInternalError  = "InternalError"
	FailureUnknownError   = "UnknownError"
	FailureRequestTimeout = "RequestTimeout"
)

// Result is the outcome of one dispatch. Reason is empty on success.
type Result struct {
	Success    bool
	StatusCode int
	Reason     string
}

// Dispatcher maps event data of a tag invocation into a LINE Conversion API request and sends it.
// It keeps no state between invocations, so one Dispatcher may serve concurrent events.
type Dispatcher struct {
	Capabilities
	Endpoint string
}

func NewDispatcher(caps Capabilities) *Dispatcher {
	return &Dispatcher{
		Capabilities: caps,
		Endpoint:     LineConversionApiEndpoint,
	}
}

// Dispatch sends the event described by cfg and the event source, then calls exactly one of
// cfg.OnSuccess and cfg.OnFailure before returning. No retry is attempted.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg *dto.TagConfig) Result {
	var (
		once   sync.Once
		result Result
	)
	complete := func(r Result) {
		once.Do(func() {
			result = r
			callback := cfg.OnFailure
			if r.Success {
				callback = cfg.OnSuccess
			}
			if callback != nil {
				callback()
			}
		})
	}

	eventData := d.EventSource.GetAllEventData()
	if eventData == nil {
		eventData = &dto.EventData{}
	}
	requestBody := d.BuildRequest(cfg, eventData)

	rawBody, err := json.Marshal([]*dto.EventRequest{requestBody})
	if err != nil {
		d.Logger.Errorw("Error marshal body data",
			"err", err.Error())
		complete(Result{Reason: FailureUnknownError})
		return result
	}

	endpoint := fmt.Sprintf("%v/%v/events", d.Endpoint, cfg.LineTagId)
	res, err := d.HTTPClient.SendHttpRequest(ctx, endpoint, d.requestOptions(cfg), rawBody)
	if err != nil {
		complete(Result{Reason: d.logRejected(err)})
		return result
	}

	switch classifyStatus(res.StatusCode) {
	case statusValid:
		browserId := requestBody.User.BrowserId
		if cfg.EnableCookie && browserId != "" {
			d.setBrowserIdCookie(browserId)
		}
		complete(Result{Success: true, StatusCode: res.StatusCode})
	case statusBadRequest:
		d.logFailedResponse(FailureBadRequest, res)
		complete(Result{StatusCode: res.StatusCode, Reason: FailureBadRequest})
	case statusInternalError:
		d.logFailedResponse(FailureInternalError, res)
		complete(Result{StatusCode: res.StatusCode, Reason: FailureInternalError})
	default:
		d.logFailedResponse(FailureUnknownError, res)
		complete(Result{StatusCode: res.StatusCode, Reason: FailureUnknownError})
	}
	return result
}

// BuildRequest resolves every field of the outbound event. Values that cannot be resolved stay
// empty and are left out of the JSON body.
func (d *Dispatcher) BuildRequest(cfg *dto.TagConfig, eventData *dto.EventData) *dto.EventRequest {
	eventType := cfg.Event
	if eventType == "" {
		eventType = dto.EventTypePageView
	}
	eventName := cfg.EventName
	if eventName == "" {
		eventName = eventData.EventName
	}

	var clickId string
	if eventData.PageLocation != "" {
		parsed, err := d.URLParser.ParseURL(eventData.PageLocation)
		if err != nil {
			d.Logger.Infow("Could not parse page location",
				"page_location", eventData.PageLocation, "err", err.Error())
		}
		clickId = getLineClickId(parsed)
	}

	browserId := ""
	if values := d.CookieReader.GetCookieValues(BrowserIdCookieName); len(values) > 0 {
		browserId = values[0]
	}
	if browserId == "" && cfg.EnableCookie {
		browserId = generateUuid(d.Random)
	}

	phone := eventData.HashedPhone
	email := eventData.HashedEmail
	if eventData.UserData != nil {
		if phone == "" {
			phone = sha256HashIfNeeded(d.Hasher, eventData.UserData.PhoneNumber)
		}
		if email == "" {
			email = sha256HashIfNeeded(d.Hasher, eventData.UserData.EmailAddress)
		}
	}

	dedupe := eventData.DeduplicationKey
	if dedupe == "" {
		dedupe = generateUuid(d.Random)
	}

	event := &dto.EventObject{
		SourceType:       SourceTypeWeb,
		EventType:        eventType,
		DeduplicationKey: dedupe,
		EventTimestamp:   d.Clock.TimestampMillis() / 1000,
		TestFlag:         cfg.TestFlag,
	}
	if eventType == dto.EventTypeConversion {
		event.EventName = eventName
	}

	requestBody := &dto.EventRequest{
		Event: event,
		User: &dto.UserObject{
			ClickId:    clickId,
			BrowserId:  browserId,
			Phone:      phone,
			Email:      email,
			Ifa:        eventData.Ifa,
			ExternalId: eventData.ExternalId,
			LineUid:    eventData.LineUserId,
		},
		Web: &dto.WebObject{
			Title:     eventData.PageTitle,
			Url:       eventData.PageLocation,
			Referrer:  eventData.PageReferrer,
			IpAddress: eventData.IpOverride,
			UserAgent: eventData.UserAgent,
		},
	}

	if isStandardEvent(eventName) {
		requestBody.Custom = &dto.CustomObject{
			Value:    eventData.EventValue,
			Currency: eventData.EventCurrency,
		}
	}

	return requestBody
}

func (d *Dispatcher) requestOptions(cfg *dto.TagConfig) *RequestOptions {
	headers := map[string]string{
		ContentTypeHeader: ContentTypeApplicationJson,
	}
	if cfg.AccessToken != "" {
		headers[ConversionApiAccessTokenHeader] = cfg.AccessToken
	}
	if cfg.ChannelId != "" {
		headers[ConversionApiLineChannelIdHeader] = cfg.ChannelId
	}
	return &RequestOptions{
		Method:  http.MethodPost,
		Headers: headers,
	}
}

func (d *Dispatcher) setBrowserIdCookie(browserId string) {
	options := browserIdCookieOptions
	d.CookieWriter.SetCookie(BrowserIdCookieName, browserId, &options)
}

func (d *Dispatcher) logFailedResponse(reason string, res *HTTPResponse) {
	d.Logger.Errorw(fmt.Sprintf("Failed to send to Conversion API because of %v", reason),
		"status_code", res.StatusCode, "body", string(res.Body))
}

// logRejected logs a request that never got a response and returns the failure reason for it.
func (d *Dispatcher) logRejected(err error) string {
	reason := ""
	var te *TransportError
	if errors.As(err, &te) {
		reason = te.Reason
	}

	failure := FailureUnknownError
	if reason == ReasonTimedOut {
		failure = FailureRequestTimeout
	}
	d.Logger.Errorw(fmt.Sprintf("Failed to send to Conversion API because of %v", failure),
		"reason", reason, "err", err.Error())
	return failure
}
