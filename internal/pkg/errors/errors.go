package errors

import "errors"

// Custom application errors
var (
	ErrNewsNotFound      = errors.New("news item not found")
	ErrScheduling        = errors.New("scheduling failed")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrMailDelivery      = errors.New("mail delivery failed")
)
