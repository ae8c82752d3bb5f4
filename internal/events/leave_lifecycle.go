package events

import "time"

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const (
	LeaveSubmitted = "leave.submitted"
	LeaveApproved  = "leave.approved"
	LeaveRejected  = "leave.rejected"
	LeaveUpdated   = "leave.updated"
	LeaveDeleted   = "leave.deleted"
)

type LeaveLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    int64     `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	ManagerID  string    `json:"manager_id"`
	LeaveType  string    `json:"leave_type,omitempty"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
