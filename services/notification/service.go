package notification

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
)

// DefaultUpcomingLimit is the number of notifications the upcoming view
// returns when the caller does not ask for a specific limit.
const DefaultUpcomingLimit = 5

// Service owns the notifications table. All reads and writes of
// notification rows go through it; handlers never touch the table directly.
type Service struct {
	db    *gorm.DB
	clock Clock
}

// NewService returns a Service backed by db, using the wall clock.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, clock: time.Now}
}

// NewServiceWithClock returns a Service with an explicit clock.
func NewServiceWithClock(db *gorm.DB, clock Clock) *Service {
	return &Service{db: db, clock: clock}
}

// Input carries the caller-settable fields of a notification. Module, Type,
// Title and Message are required; Priority and NotificationMethod fall back
// to their defaults when empty; DueDate and DueTime are optional.
type Input struct {
	Module             string     `json:"module"`
	Type               string     `json:"type"`
	Title              string     `json:"title"`
	Message            string     `json:"message"`
	Priority           string     `json:"priority"`
	DueDate            *time.Time `json:"due_date"`
	DueTime            *string    `json:"due_time"`
	IsRecurring        bool       `json:"is_recurring"`
	RecurrencePattern  string     `json:"recurrence_pattern"`
	NotificationMethod string     `json:"notification_method"`
}

// validate checks the required fields and closed value sets, applying the
// documented defaults in place. Unrecognized enum values are rejected here
// rather than persisted.
func (in *Input) validate() error {
	switch {
	case in.Module == "":
		return NewValidationError("module is required")
	case in.Type == "":
		return NewValidationError("type is required")
	case in.Title == "":
		return NewValidationError("title is required")
	case in.Message == "":
		return NewValidationError("message is required")
	}
	if !models.ValidModule(in.Module) {
		return NewValidationError("unrecognized module %q", in.Module)
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	} else if !models.ValidPriority(in.Priority) {
		return NewValidationError("unrecognized priority %q", in.Priority)
	}
	if in.NotificationMethod == "" {
		in.NotificationMethod = models.MethodInApp
	} else if !models.ValidNotificationMethod(in.NotificationMethod) {
		return NewValidationError("unrecognized notification method %q", in.NotificationMethod)
	}
	if in.DueDate != nil {
		d := dateOnly(*in.DueDate)
		in.DueDate = &d
	}
	if in.DueTime != nil {
		normalized, err := ParseTimeOfDay(*in.DueTime)
		if err != nil {
			return NewValidationError("%s", err)
		}
		in.DueTime = &normalized
	}
	return nil
}

// Create validates in, checks that the owner account exists, and persists a
// new open notification.
func (s *Service) Create(userID string, in Input) (*models.Notification, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, NewStoreError(err, "unable to look up user %s", userID)
	}
	if count == 0 {
		return nil, NewNotFoundError("user %s not found", userID)
	}

	n := models.Notification{
		UserID:             userID,
		Module:             in.Module,
		Type:               in.Type,
		Title:              in.Title,
		Message:            in.Message,
		Priority:           in.Priority,
		DueDate:            in.DueDate,
		DueTime:            in.DueTime,
		IsRecurring:        in.IsRecurring,
		RecurrencePattern:  in.RecurrencePattern,
		NotificationMethod: in.NotificationMethod,
	}
	if err := s.db.Create(&n).Error; err != nil {
		return nil, NewStoreError(err, "unable to save notification")
	}
	return &n, nil
}

// Get returns the notification with the given id if it belongs to userID.
func (s *Service) Get(userID string, id uint) (*models.Notification, error) {
	var n models.Notification
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("notification %d not found", id)
	}
	if err != nil {
		return nil, NewStoreError(err, "unable to fetch notification %d", id)
	}
	return &n, nil
}

// Update replaces the mutable fields of the notification with the values in
// in, subject to the same validation as Create.
func (s *Service) Update(userID string, id uint, in Input) (*models.Notification, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	n, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	n.Module = in.Module
	n.Type = in.Type
	n.Title = in.Title
	n.Message = in.Message
	n.Priority = in.Priority
	n.DueDate = in.DueDate
	n.DueTime = in.DueTime
	n.IsRecurring = in.IsRecurring
	n.RecurrencePattern = in.RecurrencePattern
	n.NotificationMethod = in.NotificationMethod

	if err := s.db.Save(n).Error; err != nil {
		return nil, NewStoreError(err, "unable to update notification %d", id)
	}
	return n, nil
}

// Complete sets the completion flag of the notification. A completed
// notification stays in storage but drops out of the upcoming and snoozable
// paths.
func (s *Service) Complete(userID string, id uint, completed bool) (*models.Notification, error) {
	n, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	n.IsCompleted = completed
	if err := s.db.Save(n).Error; err != nil {
		return nil, NewStoreError(err, "unable to update notification %d", id)
	}
	return n, nil
}

// List returns every notification belonging to userID, newest first.
func (s *Service) List(userID string) ([]models.Notification, error) {
	var rows []models.Notification
	err := s.db.Where("user_id = ?", userID).Order("id DESC").Find(&rows).Error
	if err != nil {
		return nil, NewStoreError(err, "unable to list notifications")
	}
	return rows, nil
}

// ListByModule returns userID's notifications for one module, ordered by due
// date then due time with undated rows last. completed narrows to one
// completion state when non-nil; priority narrows to one priority when
// non-empty.
func (s *Service) ListByModule(userID, module string, completed *bool, priority string) ([]models.Notification, error) {
	if !models.ValidModule(module) {
		return nil, NewValidationError("unrecognized module %q", module)
	}
	if priority != "" && !models.ValidPriority(priority) {
		return nil, NewValidationError("unrecognized priority %q", priority)
	}

	q := s.db.Where("user_id = ? AND module = ?", userID, module)
	if completed != nil {
		q = q.Where("is_completed = ?", *completed)
	}
	if priority != "" {
		q = q.Where("priority = ?", priority)
	}

	var rows []models.Notification
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, NewStoreError(err, "unable to list %s notifications", module)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return compareDue(&rows[i], &rows[j]) < 0
	})
	return rows, nil
}

// Upcoming returns up to limit open notifications that are either undated or
// due today or later, most urgent first: priority rank, then due date, then
// due time, with missing values last. Rows that tie on all three keys keep
// their creation order.
func (s *Service) Upcoming(userID string, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		return nil, NewValidationError("limit must be a positive integer, got %d", limit)
	}

	today := dateOnly(s.clock())
	var rows []models.Notification
	err := s.db.
		Where("user_id = ? AND is_completed = ?", userID, false).
		Where("due_date IS NULL OR due_date >= ?", today).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, NewStoreError(err, "unable to list upcoming notifications")
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return upcomingBefore(&rows[i], &rows[j])
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
