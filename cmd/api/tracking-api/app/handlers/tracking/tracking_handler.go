package tracking

import (
	"encoding/json"
	"github.com/punky97/go-codebase/core/logger"
	"github.com/punky97/go-codebase/core/transport/transhttp"
	beekit_utils "github.com/punky97/go-codebase/core/utils"
	"net"
	"net/http"
	"strings"
	"time"
	"tracking-line/dto"
	line_tracking "tracking-line/pkg/line-tracking"
	"tracking-line/pkg/statistic"
)

type TrackingHandler struct {
	// Dispatcher carries the process-wide capabilities, cookie and event data ones are bound per request
	Dispatcher *line_tracking.Dispatcher
	TagCode    string
}

type TrackingResponse struct {
	Success      bool   `json:"success,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

func (h *TrackingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logContext := logger.LoggerCtx(r.Context())

	action := &dto.TrackingBody{}
	if err := json.NewDecoder(r.Body).Decode(action); err != nil {
		logContext.Infof("Error during parse TrackingBody form %v", err)
		transhttp.RespondJSON(w, http.StatusOK, TrackingResponse{
			Success:      false,
			ErrorMessage: err.Error(),
		})
		return
	}

	if len(action.EventType) < 1 {
		transhttp.RespondJSON(w, http.StatusOK, TrackingResponse{
			Success:      false,
			ErrorMessage: "missing event type",
		})
		return
	}

	tag, err := line_tracking.GetTagByCode(h.TagCode)
	if err != nil {
		logContext.Errorw("Could not load tag", "code", h.TagCode, "error", err.Error())
		transhttp.RespondJSON(w, http.StatusOK, TrackingResponse{
			Success:      false,
			ErrorMessage: err.Error(),
		})
		return
	}

	start := time.Now()
	logContext.Infof("Start tracking event: %v", action.EventType)
	defer func() {
		logContext.Infof("Complete process msg, took: %v", time.Since(start))
	}()

	event, eventName := convertEventType(action.EventType)
	cfg := line_tracking.NewTagConfig(tag, event, eventName)

	success := false
	cfg.OnSuccess = func() { success = true }
	cfg.OnFailure = func() { success = false }

	caps := h.Dispatcher.Capabilities
	caps.Logger = logContext
	cookies := &exchangeCookies{w: w, r: r}
	caps.CookieReader = cookies
	caps.CookieWriter = cookies
	caps.EventSource = line_tracking.EventSourceFunc(func() *dto.EventData {
		return convertEventData(r, action)
	})

	d := &line_tracking.Dispatcher{Capabilities: caps, Endpoint: h.Dispatcher.Endpoint}
	result := d.Dispatch(r.Context(), cfg)
	if !success {
		transhttp.RespondJSON(w, http.StatusOK, TrackingResponse{
			Success:      false,
			ErrorMessage: result.Reason,
		})
		return
	}

	transhttp.RespondJSON(w, http.StatusOK, TrackingResponse{
		Success: true,
	})
}

// convertEventType maps a storefront event onto a tag event kind and LINE event name.
func convertEventType(eventType string) (event, eventName string) {
	if eventType == statistic.EventPageView {
		return dto.EventTypePageView, ""
	}
	if lineEvent, ok := statistic.StoreEventToLineEvent[eventType]; ok {
		return dto.EventTypeConversion, lineEvent
	}
	return dto.EventTypeConversion, eventType
}

func convertEventData(r *http.Request, body *dto.TrackingBody) *dto.EventData {
	params := body.Payload
	if params == nil {
		params = map[string]interface{}{}
	}
	eventData := line_tracking.NewEventData(params)

	if eventData.IpOverride == "" {
		eventData.IpOverride = clientIP(r)
	}
	if eventData.UserAgent == "" {
		eventData.UserAgent = r.Header.Get("User-Agent")
	}

	return eventData
}

// clientIP returns the first hop of the origin address without its port.
func clientIP(r *http.Request) string {
	ip := strings.TrimSpace(strings.Split(beekit_utils.GetOriginClientIP(r), ",")[0])
	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	return ip
}
