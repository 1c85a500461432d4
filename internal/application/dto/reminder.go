package dto

// RequestReminderRequest asks for a deferred notification ahead of a news
// item's date. RequesterID is resolved from the identity layer, not bound
// from the body.
type RequestReminderRequest struct {
	NewsID      uint `json:"news_id" query:"news_id"`
	RequesterID uint `json:"-"`
}

// CancelReminderRequest withdraws a previously requested reminder.
type CancelReminderRequest struct {
	NewsID      uint `json:"news_id" query:"news_id"`
	RequesterID uint `json:"-"`
}
