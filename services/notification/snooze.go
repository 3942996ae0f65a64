package notification

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
)

// Snooze pushes an open notification's due point forward by days calendar
// days and hours hours. The base is the existing due date/time; a missing
// due date bases the shift on today, a missing due time on the current time
// of day. The hour shift wraps at midnight without bumping the date.
//
// Snooze is not idempotent: every call re-applies the offset, so a retried
// request compounds the delay. Callers that time out should re-fetch the
// notification before retrying.
func (s *Service) Snooze(userID string, id uint, days, hours int) (*models.Notification, error) {
	if days < 0 || hours < 0 {
		return nil, NewValidationError("days and hours must not be negative")
	}
	if days == 0 && hours == 0 {
		return nil, NewValidationError("at least one of days and hours must be positive")
	}

	var n models.Notification
	err := s.db.
		Where("id = ? AND user_id = ? AND is_completed = ?", id, userID, false).
		First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("open notification %d not found", id)
	}
	if err != nil {
		return nil, NewStoreError(err, "unable to fetch notification %d", id)
	}

	now := s.clock()

	baseDate := dateOnly(now)
	if n.DueDate != nil {
		baseDate = dateOnly(*n.DueDate)
	}
	baseTime := now
	if n.DueTime != nil {
		if parsed, err := time.Parse(timeLayout, *n.DueTime); err == nil {
			baseTime = parsed
		}
	}

	newDate := baseDate.AddDate(0, 0, days)
	newTime := addHours(baseTime, hours)

	n.DueDate = &newDate
	n.DueTime = &newTime
	if err := s.db.Save(&n).Error; err != nil {
		return nil, NewStoreError(err, "unable to snooze notification %d", id)
	}
	return &n, nil
}
