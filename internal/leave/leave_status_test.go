package leave_test

import (
	"testing"

	"leave-approval/internal/leave"
	leaveerrors "leave-approval/internal/leave/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    leave.Status
		wantErr bool
	}{
		{in: "PENDING", want: leave.StatusPending},
		{in: "approved", want: leave.StatusApproved},
		{in: "Rejected", want: leave.StatusRejected},
		{in: "bogus", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := leave.ParseStatus(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatus, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseType(t *testing.T) {
	got, err := leave.ParseType("maternity")
	assert.NoError(t, err)
	assert.Equal(t, leave.TypeMaternity, got)

	got, err = leave.ParseType("")
	assert.NoError(t, err)
	assert.Empty(t, got)

	_, err = leave.ParseType("SABBATICAL")
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)
}
