package leave

import (
	"io"
	"mime/multipart"
)

// SubmitLeaveRequest is bound from a multipart/form-data submission. The
// medical document travels as the optional "medicalDocument" file part.
type SubmitLeaveRequest struct {
	EmployeeID     string   `form:"employeeId" binding:"required"`
	FirstName      string   `form:"firstName" binding:"required"`
	LastName       string   `form:"lastName" binding:"required"`
	Email          string   `form:"email" binding:"required"`
	Position       string   `form:"position" binding:"required"`
	Phone          string   `form:"phone" binding:"required"`
	ManagerID      string   `form:"managerId" binding:"required"`
	ManagerName    string   `form:"managerName" binding:"required"`
	ManagerEmail   string   `form:"managerEmail" binding:"required"`
	LeaveStartDate string   `form:"leaveStartDate" binding:"required"`
	LeaveEndDate   string   `form:"leaveEndDate" binding:"required"`
	Comments       string   `form:"comments"`
	DurationType   *string  `form:"durationType"`
	Duration       *float64 `form:"duration"`
	LeaveReason    string   `form:"leaveReason"`
	LeaveStatus    string   `form:"leaveStatus"`
	LeaveType      string   `form:"leaveType"`

	MedicalDocument *multipart.FileHeader `form:"medicalDocument"`
}

// UpdateLeaveRequest replaces every stored field of a leave request.
type UpdateLeaveRequest struct {
	EmployeeID      string   `json:"employeeId" binding:"required"`
	FirstName       string   `json:"firstName" binding:"required"`
	LastName        string   `json:"lastName" binding:"required"`
	Email           string   `json:"email" binding:"required"`
	Position        string   `json:"position"`
	Phone           string   `json:"phone"`
	ManagerID       string   `json:"managerId" binding:"required"`
	ManagerName     string   `json:"managerName"`
	ManagerEmail    string   `json:"managerEmail"`
	LeaveStartDate  string   `json:"leaveStartDate" binding:"required,datetime=2006-01-02"`
	LeaveEndDate    string   `json:"leaveEndDate" binding:"required,datetime=2006-01-02"`
	Comments        string   `json:"comments"`
	DurationType    *string  `json:"durationType"`
	Duration        *float64 `json:"duration"`
	LeaveReason     string   `json:"leaveReason"`
	LeaveStatus     string   `json:"leaveStatus"`
	LeaveType       string   `json:"leaveType"`
	MedicalDocument *string  `json:"medicalDocument"`
}

type LeaveResponse struct {
	ID              int64    `json:"id"`
	EmployeeID      string   `json:"employeeId"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Position        string   `json:"position"`
	Phone           string   `json:"phone"`
	ManagerID       string   `json:"managerId"`
	ManagerName     string   `json:"managerName"`
	ManagerEmail    string   `json:"managerEmail"`
	LeaveType       string   `json:"leaveType,omitempty"`
	LeaveStatus     string   `json:"leaveStatus"`
	LeaveStartDate  string   `json:"leaveStartDate"`
	LeaveEndDate    string   `json:"leaveEndDate"`
	LeaveReason     string   `json:"leaveReason,omitempty"`
	Comments        string   `json:"comments,omitempty"`
	Duration        *float64 `json:"duration,omitempty"`
	DurationType    *string  `json:"durationType,omitempty"`
	MedicalDocument *string  `json:"medicalDocument,omitempty"`
	RejectionReason *string  `json:"rejectionReason,omitempty"`
	ApprovedAt      *string  `json:"approvedAt,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}

type FileSizeResponse struct {
	Size int64 `json:"size"`
}

// Attachment is an uploaded file handed to the service. Size 0 means the
// part was present but empty.
type Attachment struct {
	Filename string
	Size     int64
	Content  io.Reader
}
