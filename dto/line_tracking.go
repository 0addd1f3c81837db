package dto

const (
	EventTypePageView   = "page_view"
	EventTypeConversion = "conversion"
)

// TagConfig holds the settings of one tag invocation. It is read-only while the
// event is being dispatched.
type TagConfig struct {
	Event        string
	LineTagId    string
	AccessToken  string
	ChannelId    string
	EnableCookie bool
	EventName    string
	TestFlag     *bool

	OnSuccess func()
	OnFailure func()
}

// EventData is the snapshot of the signals collected for a single event.
// Empty strings mean the signal was not supplied.
type EventData struct {
	EventName    string
	PageLocation string
	PageTitle    string
	PageReferrer string
	IpOverride   string
	UserAgent    string

	UserData *UserData

	HashedPhone      string
	HashedEmail      string
	Ifa              string
	ExternalId       string
	LineUserId       string
	DeduplicationKey string

	EventValue    *float64
	EventCurrency string
}

type UserData struct {
	PhoneNumber  string
	EmailAddress string
}

type EventRequest struct {
	Event  *EventObject  `json:"event"`
	User   *UserObject   `json:"user"`
	Web    *WebObject    `json:"web"`
	Custom *CustomObject `json:"custom,omitempty"`
}

type EventObject struct {
	SourceType       string `json:"source_type"`
	EventType        string `json:"event_type"`
	EventName        string `json:"event_name,omitempty"`
	DeduplicationKey string `json:"deduplication_key,omitempty"`
	EventTimestamp   int64  `json:"event_timestamp"`
	// TestFlag is sent whenever it is configured, false included
	TestFlag *bool `json:"test_flag,omitempty"`
}

type UserObject struct {
	ClickId    string `json:"click_id,omitempty"`
	BrowserId  string `json:"browser_id,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Ifa        string `json:"ifa,omitempty"`
	ExternalId string `json:"external_id,omitempty"`
	LineUid    string `json:"line_uid,omitempty"`
}

type WebObject struct {
	Title     string `json:"title,omitempty"`
	Url       string `json:"url,omitempty"`
	Referrer  string `json:"referrer,omitempty"`
	IpAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

type CustomObject struct {
	Value    *float64 `json:"value,omitempty"`
	Currency string   `json:"currency,omitempty"`
}
