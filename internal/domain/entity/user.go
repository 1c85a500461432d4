package entity

// User is the minimal read model of a platform account. Account management
// itself lives in the identity service; the reminder pipeline only needs the
// delivery address of a requester.
type User struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Email string `gorm:"column:email;uniqueIndex;not null"`
	Name  string `gorm:"column:name"`
}

// TableName specifies the table name for the User entity.
func (User) TableName() string {
	return "users"
}
