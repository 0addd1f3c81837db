package line_tracking

import (
	"tracking-line/dto"
	"tracking-line/pkg/utils"
)

// NewEventData reads the event data keys of a loosely typed payload.
func NewEventData(payload map[string]interface{}) *dto.EventData {
	data := &dto.EventData{
		EventName:        utils.GetString(payload, "event_name"),
		PageLocation:     utils.GetString(payload, "page_location"),
		PageTitle:        utils.GetString(payload, "page_title"),
		PageReferrer:     utils.GetString(payload, "page_referrer"),
		IpOverride:       utils.GetString(payload, "ip_override"),
		UserAgent:        utils.GetString(payload, "user_agent"),
		HashedPhone:      utils.GetString(payload, "x-line-hashed_phone"),
		HashedEmail:      utils.GetString(payload, "x-line-hashed_email"),
		Ifa:              utils.GetString(payload, "x-line-ifa"),
		ExternalId:       utils.GetString(payload, "x-line-external_id"),
		LineUserId:       utils.GetString(payload, "x-line-user_id"),
		DeduplicationKey: utils.GetString(payload, "x-line-deduplication_key"),
		EventValue:       utils.GetFloat64(payload, "x-line-event-value"),
		EventCurrency:    utils.GetString(payload, "x-line-event-currency"),
	}

	if userData, ok := utils.GetMap(payload, "user_data"); ok {
		data.UserData = &dto.UserData{
			PhoneNumber:  utils.GetString(userData, "phone_number"),
			EmailAddress: utils.GetString(userData, "email_address"),
		}
	}

	return data
}
