package statistic

import (
	line_tracking "tracking-line/pkg/line-tracking"
)

const (
	EventPageView             = "page_view"
	ViewContent               = "view_content"
	EventAddToCart            = "add_to_cart"
	EventInitiateCheckout     = "initiate_checkout"
	Purchase                  = "purchase"
	EventGenerateLead         = "generate_lead"
	EventCompleteReservation  = "complete_reservation"
	EventCompleteRegistration = "complete_registration"
)

var (
	StoreEventToLineEvent = map[string]string{
		ViewContent:               line_tracking.EventViewItemDetail,
		EventAddToCart:            line_tracking.EventAddToCart,
		EventInitiateCheckout:     line_tracking.EventInitiateCheckOut,
		Purchase:                  line_tracking.EventPurchase,
		EventGenerateLead:         line_tracking.EventGenerateLead,
		EventCompleteReservation:  line_tracking.EventCompleteReservation,
		EventCompleteRegistration: line_tracking.EventCompleteRegistration,
	}
)
