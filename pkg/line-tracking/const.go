package line_tracking

import "net/http"

const (
	LineConversionApiEndpoint = "https://conversion-api.tr.line.me/v1"

	BrowserIdCookieName   = "__lt__cid"
	BrowserIdCookieMaxAge = 63072000 // 2 years
	ClickIdQueryName      = "ldtag_cl"
	HashedRegexPattern    = "^[0-9a-fA-F]{64}$"
	SourceTypeWeb         = "web"
	CookieDomainAuto      = "auto"

	ContentTypeHeader                = "Content-Type"
	ContentTypeApplicationJson       = "application/json"
	ConversionApiAccessTokenHeader   = "X-Line-TagAccessToken"
	ConversionApiLineChannelIdHeader = "X-Line-ChannelID"

	EventViewItemDetail       = "ViewItemDetail"
	EventAddToCart            = "AddToCart"
	EventInitiateCheckOut     = "InitiateCheckOut"
	EventPurchase             = "Purchase"
	EventGenerateLead         = "GenerateLead"
	EventCompleteReservation  = "CompleteReservation"
	EventCompleteRegistration = "CompleteRegistration"
)

var (
	LineStandardEvents = []string{
		EventViewItemDetail,
		EventAddToCart,
		EventInitiateCheckOut,
		EventPurchase,
		EventGenerateLead,
		EventCompleteReservation,
		EventCompleteRegistration,
	}

	browserIdCookieOptions = CookieOptions{
		Domain:   CookieDomainAuto,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Secure:   true,
		MaxAge:   BrowserIdCookieMaxAge,
		HttpOnly: false,
	}
)
