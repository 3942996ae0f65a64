package models

type HealthRecord struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      string `gorm:"size:36;index;not null" json:"user_id"`
	HealthTips  string `gorm:"type:text;not null" json:"healthTips"`
	Steps       int    `gorm:"not null" json:"steps"`
	Workout     string `gorm:"type:text;not null" json:"workout"`
	WaterIntake int    `gorm:"not null" json:"waterIntake"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HealthRecord) TableName() string {
	return "health"
}
