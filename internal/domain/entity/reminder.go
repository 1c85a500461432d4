package entity

import "time"

// Reminder records a user's request to be notified before a news item's date.
// SchedulerHandle stays nil until the scheduler gateway accepts the deferred
// notification; it is the token used for best-effort cancellation later.
type Reminder struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	NewsID          uint      `gorm:"column:news_id;index;not null"`
	RequesterID     uint      `gorm:"column:requester_id;not null"`
	SchedulerHandle *string   `gorm:"column:scheduler_handle"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "news_reminder"
}

// Scheduled reports whether a scheduler handle has been attached.
func (r *Reminder) Scheduled() bool {
	return r.SchedulerHandle != nil && *r.SchedulerHandle != ""
}
