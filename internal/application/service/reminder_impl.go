package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/application/dto"
	"backoffice/internal/domain/constant"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infrastructure/mailer"
	appErrors "backoffice/internal/pkg/errors"
	"backoffice/internal/pkg/logger"

	"gorm.io/gorm"
)

// reminderLead is how far ahead of the news date the notification fires.
const reminderLead = 24 * time.Hour

type reminderService struct {
	reminderRepo repository.ReminderRepository
	newsRepo     repository.NewsRepository
	userRepo     repository.UserRepository
	gateway      SchedulerGateway
	notifier     mailer.Notifier
	log          logger.Logger
}

// NewReminderService creates the ReminderService implementation and registers
// the notification task with the scheduler gateway.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	newsRepo repository.NewsRepository,
	userRepo repository.UserRepository,
	gateway SchedulerGateway,
	notifier mailer.Notifier,
	log logger.Logger,
) ReminderService {
	s := &reminderService{
		reminderRepo: reminderRepo,
		newsRepo:     newsRepo,
		userRepo:     userRepo,
		gateway:      gateway,
		notifier:     notifier,
		log:          log,
	}
	gateway.RegisterTask(constant.TaskNotifyReminder, s.HandleReminderNotification)
	return s
}

// RequestReminder records the reminder, bumps the news counter, and schedules
// the deferred notification. The reminder record is created before scheduling
// so an ID exists to pass as the task payload; a scheduling failure leaves the
// record handle-less rather than rolling it back.
func (s *reminderService) RequestReminder(ctx context.Context, req dto.RequestReminderRequest) (uint, error) {
	news, err := s.newsRepo.FindByID(ctx, req.NewsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, appErrors.ErrNewsNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to load news %d while requesting reminder", req.NewsID), err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	reminder := &entity.Reminder{
		NewsID:      req.NewsID,
		RequesterID: req.RequesterID,
	}
	reminderID, err := s.reminderRepo.Create(ctx, reminder)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to create reminder for news %d", req.NewsID), err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	// Counter update is best-effort; a failure here must not lose the
	// reminder itself.
	if err := s.newsRepo.SetReminderCount(ctx, news.ID, news.Reminder+1); err != nil {
		s.log.Error(fmt.Sprintf("Failed to bump reminder count for news %d", news.ID), err)
	}

	fireTime := news.Date.Add(-reminderLead)
	handle, err := s.gateway.Schedule(ctx, constant.TaskNotifyReminder, fireTime, reminderID)
	if err != nil {
		// The record stays without a handle; it cannot be cancelled by handle
		// later. Reported to the log, not to the caller.
		s.log.Warn(fmt.Sprintf("Scheduling failed for reminder %d (news %d); record left without handle: %v", reminderID, news.ID, err))
		return reminderID, nil
	}

	if err := s.reminderRepo.AttachHandle(ctx, reminderID, handle); err != nil {
		s.log.Error(fmt.Sprintf("Failed to persist scheduler handle for reminder %d", reminderID), err)
		return reminderID, nil
	}

	s.log.Info(fmt.Sprintf("Reminder %d for news %d scheduled at %v (handle %s)", reminderID, news.ID, fireTime, handle))
	return reminderID, nil
}

// CancelReminder deletes the reminder for (news, requester) and asks the
// gateway to withdraw the scheduled task. The cancel result is ignored: a
// task that already started simply delivers, which is accepted.
func (s *reminderService) CancelReminder(ctx context.Context, req dto.CancelReminderRequest) error {
	if _, err := s.newsRepo.FindByID(ctx, req.NewsID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrNewsNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to load news %d while cancelling reminder", req.NewsID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	reminder, err := s.reminderRepo.FindByNewsAndRequester(ctx, req.NewsID, req.RequesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Nothing to cancel.
			return nil
		}
		s.log.Error(fmt.Sprintf("Failed to find reminder for news %d and user %d", req.NewsID, req.RequesterID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if reminder.Scheduled() {
		if accepted := s.gateway.Cancel(ctx, *reminder.SchedulerHandle); !accepted {
			s.log.Debug(fmt.Sprintf("Gateway declined cancellation for reminder %d; notification may still be delivered", reminder.ID))
		}
	} else {
		s.log.Warn(fmt.Sprintf("Reminder %d has no scheduler handle; deleting record only", reminder.ID))
	}

	if err := s.reminderRepo.Delete(ctx, reminder.ID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete reminder %d", reminder.ID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("Cancelled reminder %d for news %d", reminder.ID, req.NewsID))
	return nil
}

// HandleReminderNotification delivers the reminder email. The record is kept
// after firing as a historical trace.
func (s *reminderService) HandleReminderNotification(ctx context.Context, reminderID uint) error {
	reminder, err := s.reminderRepo.FindByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn(fmt.Sprintf("Reminder %d gone at fire time (cancelled), skipping delivery", reminderID))
			return nil
		}
		s.log.Error(fmt.Sprintf("Failed to load reminder %d at fire time", reminderID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	news, err := s.newsRepo.FindByID(ctx, reminder.NewsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn(fmt.Sprintf("News %d gone at fire time of reminder %d, skipping delivery", reminder.NewsID, reminderID))
			return nil
		}
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	requester, err := s.userRepo.FindByID(ctx, reminder.RequesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn(fmt.Sprintf("Requester %d of reminder %d no longer exists, skipping delivery", reminder.RequesterID, reminderID))
			return nil
		}
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	subject := fmt.Sprintf("Upcoming: %s", news.Name)
	body := fmt.Sprintf(
		"Hello %s,\n\nYou asked to be reminded about %q happening on %s.\n\n%s\n",
		requester.Name, news.Name, news.Date.Format("2006-01-02 15:04"), news.Description,
	)
	if err := s.notifier.Send(ctx, requester.Email, subject, body); err != nil {
		s.log.Error(fmt.Sprintf("Failed to deliver reminder %d to %s", reminderID, requester.Email), err)
		return fmt.Errorf("%w: %v", appErrors.ErrMailDelivery, err)
	}

	s.log.Info(fmt.Sprintf("Delivered reminder %d to %s", reminderID, requester.Email))
	return nil
}

// InitializeSchedules re-schedules pending reminders after a restart. Fired
// and missed reminders (fire time already past) are left untouched so a
// restart never causes duplicate delivery.
func (s *reminderService) InitializeSchedules(ctx context.Context) error {
	reminders, err := s.reminderRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load reminders for schedule initialization", err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	now := time.Now()
	scheduled := 0
	skipped := 0

	for _, reminder := range reminders {
		news, err := s.newsRepo.FindByID(ctx, reminder.NewsID)
		if err != nil {
			s.log.Warn(fmt.Sprintf("Skipping reminder %d during init: news %d not loadable: %v", reminder.ID, reminder.NewsID, err))
			skipped++
			continue
		}

		fireTime := news.Date.Add(-reminderLead)
		if !fireTime.After(now) {
			skipped++
			continue
		}

		handle, err := s.gateway.Schedule(ctx, constant.TaskNotifyReminder, fireTime, reminder.ID)
		if err != nil {
			s.log.Error(fmt.Sprintf("Failed to re-schedule reminder %d during init", reminder.ID), err)
			continue
		}
		if err := s.reminderRepo.AttachHandle(ctx, reminder.ID, handle); err != nil {
			s.log.Error(fmt.Sprintf("Failed to persist fresh handle for reminder %d during init", reminder.ID), err)
		}
		scheduled++
	}

	s.log.Info(fmt.Sprintf("Schedule initialization complete. Scheduled: %d, Skipped: %d", scheduled, skipped))
	return nil
}
