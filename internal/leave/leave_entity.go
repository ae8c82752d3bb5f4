package leave

import "time"

type LeaveRequest struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	EmployeeID string `gorm:"type:varchar(64);not null;index:idx_leave_requests_employee_status"`
	FirstName  string `gorm:"type:varchar(100);not null"`
	LastName   string `gorm:"type:varchar(100);not null"`
	Email      string `gorm:"type:varchar(255);not null"`
	Position   string `gorm:"type:varchar(100)"`
	Phone      string `gorm:"type:varchar(50)"`

	ManagerID    string `gorm:"type:varchar(64);not null;index:idx_leave_requests_manager_status"`
	ManagerName  string `gorm:"type:varchar(200)"`
	ManagerEmail string `gorm:"type:varchar(255)"`

	LeaveType      Type      `gorm:"type:varchar(30)"`
	LeaveStatus    Status    `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_employee_status;index:idx_leave_requests_manager_status"`
	LeaveStartDate time.Time `gorm:"type:date;not null"`
	LeaveEndDate   time.Time `gorm:"type:date;not null"`
	LeaveReason    string    `gorm:"type:text"`
	Comments       string    `gorm:"type:text"`

	Duration        *float64 `gorm:"type:numeric(5,1)"`
	DurationType    *string  `gorm:"type:varchar(30)"`
	MedicalDocument *string  `gorm:"type:text"`

	RejectionReason *string `gorm:"type:text"`
	ApprovedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
