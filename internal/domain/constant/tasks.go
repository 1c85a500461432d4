package constant

// TaskName identifies a unit of deferred work handed to the scheduler gateway.
type TaskName string

const (
	// TaskNotifyReminder delivers the reminder email for a news item.
	TaskNotifyReminder TaskName = "notify_news_reminder"
)

func (t TaskName) String() string {
	return string(t)
}
