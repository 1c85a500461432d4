package entity

import "time"

// News represents a news item. Reminder counts how many reminders were ever
// created for the item, not how many are still pending.
type News struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;type:text;not null"`
	Date        time.Time `gorm:"column:date;not null"`
	Description string    `gorm:"column:description;type:text"`
	Likes       int       `gorm:"column:likes;default:0"`
	Reminder    int       `gorm:"column:reminder;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the News entity.
func (News) TableName() string {
	return "news"
}
