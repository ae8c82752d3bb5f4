package leave

import (
	"strings"

	leaveerrors "leave-approval/internal/leave/errors"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Type string

const (
	TypeSick        Type = "SICK"
	TypeVacation    Type = "VACATION"
	TypeCasual      Type = "CASUAL"
	TypeMaternity   Type = "MATERNITY"
	TypePaternity   Type = "PATERNITY"
	TypeBereavement Type = "BEREAVEMENT"
	TypeOther       Type = "OTHER"
)

var validTypes = map[Type]struct{}{
	TypeSick:        {},
	TypeVacation:    {},
	TypeCasual:      {},
	TypeMaternity:   {},
	TypePaternity:   {},
	TypeBereavement: {},
	TypeOther:       {},
}

// ParseStatus accepts a status name in any case ("approved", "APPROVED").
func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToUpper(strings.TrimSpace(raw))); s {
	case StatusPending, StatusApproved, StatusRejected:
		return s, nil
	default:
		return "", leaveerrors.ErrInvalidStatus
	}
}

// ParseType accepts a leave type name in any case. The empty string is a
// valid, unspecified type.
func ParseType(raw string) (Type, error) {
	if raw == "" {
		return "", nil
	}
	t := Type(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := validTypes[t]; !ok {
		return "", leaveerrors.ErrInvalidLeaveType
	}
	return t, nil
}

// isAllowedStatusTransition: a pending request is decided once. Repeating
// the current decision is accepted as a no-op.
func isAllowedStatusTransition(current, target Status) bool {
	if current == target {
		return true
	}
	return current == StatusPending && (target == StatusApproved || target == StatusRejected)
}
