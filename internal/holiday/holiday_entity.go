package holiday

import "time"

// Holiday is a company-declared day off on top of the national calendar.
type Holiday struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:100;not null"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uq_holiday_date"`
	IsRecurring bool      `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
