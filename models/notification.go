package models

import "time"

// Modules a notification can belong to.
const (
	ModuleEvents  = "events"
	ModuleTasks   = "tasks"
	ModuleHealth  = "health"
	ModuleFinance = "finance"
	ModuleMood    = "mood"
	ModuleOther   = "other"
)

// Notification priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Delivery labels. Delivery itself is not implemented; the label is stored
// so the client can display how the user asked to be reminded.
const (
	MethodInApp = "in-app"
	MethodEmail = "email"
	MethodBoth  = "both"
)

type Notification struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	UserID             string     `gorm:"size:36;index;not null" json:"user_id"`
	Module             string     `gorm:"size:20;not null" json:"module"`
	Type               string     `gorm:"size:50;not null" json:"type"`
	Title              string     `gorm:"not null" json:"title"`
	Message            string     `gorm:"type:text;not null" json:"message"`
	Priority           string     `gorm:"size:10;not null;default:medium" json:"priority"`
	DueDate            *time.Time `gorm:"type:date" json:"due_date,omitempty"`
	DueTime            *string    `gorm:"type:time" json:"due_time,omitempty"`
	IsCompleted        bool       `gorm:"not null;default:false" json:"is_completed"`
	IsRecurring        bool       `gorm:"not null;default:false" json:"is_recurring"`
	RecurrencePattern  string     `json:"recurrence_pattern,omitempty"`
	NotificationMethod string     `gorm:"size:10;not null;default:in-app" json:"notification_method"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// ValidModule reports whether m is one of the recognized modules.
func ValidModule(m string) bool {
	switch m {
	case ModuleEvents, ModuleTasks, ModuleHealth, ModuleFinance, ModuleMood, ModuleOther:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the recognized priorities.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidNotificationMethod reports whether m is one of the recognized
// delivery labels.
func ValidNotificationMethod(m string) bool {
	switch m {
	case MethodInApp, MethodEmail, MethodBoth:
		return true
	}
	return false
}

// PriorityRank maps a priority to its sort position. Every component that
// orders notifications by urgency uses this ranking: high first, then
// medium, then low, with anything unrecognized last.
func PriorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}
