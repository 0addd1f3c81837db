package dto

type TrackingBody struct {
	EventType string                 `json:"event_type"`
	Payload   map[string]interface{} `json:"payload"`
}

// Tag is a configured LINE Tag with the credentials of its Conversion API
type Tag struct {
	Id          string `json:"id"`
	AccessToken string `json:"access_token"`
	ChannelId   string `json:"channel_id"`
}
