package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, leave *LeaveRequest) error
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id int64) (LeaveRequest, error)
	FindByManagerAndStatus(ctx context.Context, managerID string, status Status) ([]LeaveRequest, error)
	FindByEmployeeAndStatus(ctx context.Context, employeeID string, status Status) ([]LeaveRequest, error)
	FindByManager(ctx context.Context, managerID string) ([]LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	Update(ctx context.Context, leave *LeaveRequest) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds the repository to a database/sql transaction so leave rows
// and outbox rows commit together.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, leave *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (LeaveRequest, error) {
	var leave LeaveRequest
	err := r.db.WithContext(ctx).First(&leave, id).Error
	return leave, err
}

func (r *repository) FindByManagerAndStatus(ctx context.Context, managerID string, status Status) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("manager_id = ? AND leave_status = ?", managerID, status).
		Order("leave_start_date ASC, id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByEmployeeAndStatus(ctx context.Context, employeeID string, status Status) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND leave_status = ?", employeeID, status).
		Order("leave_start_date ASC, id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByManager(ctx context.Context, managerID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("leave_start_date ASC, id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("leave_start_date ASC, id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, leave *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(leave).Error
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&LeaveRequest{}, id)
	return res.RowsAffected, res.Error
}
