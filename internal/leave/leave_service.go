package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"leave-approval/internal/calendar"
	leaveerrors "leave-approval/internal/leave/errors"
	"leave-approval/internal/messaging/kafka"
	"leave-approval/internal/shared/contextutil"
	"leave-approval/internal/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// MedicalDocumentThresholdDays is the business-day length a sick leave
	// must exceed before a medical document is stored.
	MedicalDocumentThresholdDays = 2
	MedicalDocumentFileType      = "medicalDocument"

	// MaxLeaveSpanDays bounds a single request, inclusive of both ends.
	MaxLeaveSpanDays = 366
)

type Service interface {
	Submit(ctx context.Context, req SubmitLeaveRequest, document *Attachment) (LeaveResponse, error)
	Approve(ctx context.Context, id int64) (LeaveResponse, error)
	Reject(ctx context.Context, id int64, reason string) (LeaveResponse, error)
	Update(ctx context.Context, id int64, req UpdateLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id int64) (string, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByStatusAndManager(ctx context.Context, managerID string, status Status) ([]LeaveResponse, error)
	GetByEmployeeAndStatus(ctx context.Context, employeeID string, status Status) ([]LeaveResponse, error)
	GetByManager(ctx context.Context, managerID string) ([]LeaveResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
}

type Config struct {
	// RequireMedicalDocument rejects long sick leaves submitted without a
	// document instead of accepting them without one.
	RequireMedicalDocument bool
}

type service struct {
	db        *sql.DB
	repo      Repository
	holidays  HolidayProvider
	documents storage.DocumentStore
	outbox    kafka.OutboxRepository
	cfg       Config
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, holidays HolidayProvider, documents storage.DocumentStore, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, holidays, documents, nil, Config{}, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	holidays HolidayProvider,
	documents storage.DocumentStore,
	outbox kafka.OutboxRepository,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		holidays:  holidays,
		documents: documents,
		outbox:    outbox,
		cfg:       cfg,
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, req SubmitLeaveRequest, document *Attachment) (LeaveResponse, error) {
	requestID := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", requestID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("manager_id", req.ManagerID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.LeaveStartDate),
		zap.String("end_date", req.LeaveEndDate),
	)

	startDate, endDate, err := parseRange(req.LeaveStartDate, req.LeaveEndDate)
	if err != nil {
		s.logger.Warn("submit leave validation failed", zap.String("request_id", requestID), zap.Error(err))
		return LeaveResponse{}, err
	}
	leaveType, err := ParseType(req.LeaveType)
	if err != nil {
		return LeaveResponse{}, err
	}
	if req.LeaveStatus != "" {
		if st, err := ParseStatus(req.LeaveStatus); err != nil || st != StatusPending {
			s.logger.Warn("submit leave ignoring client status",
				zap.String("request_id", requestID),
				zap.String("leave_status", req.LeaveStatus),
			)
		}
	}

	l := &LeaveRequest{
		EmployeeID:     req.EmployeeID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Position:       req.Position,
		Phone:          req.Phone,
		ManagerID:      req.ManagerID,
		ManagerName:    req.ManagerName,
		ManagerEmail:   req.ManagerEmail,
		LeaveType:      leaveType,
		LeaveStatus:    StatusPending,
		LeaveStartDate: startDate,
		LeaveEndDate:   endDate,
		LeaveReason:    req.LeaveReason,
		Comments:       req.Comments,
		Duration:       req.Duration,
		DurationType:   req.DurationType,
	}

	if leaveType == TypeSick {
		if err := s.attachMedicalDocument(ctx, l, document); err != nil {
			return LeaveResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.String("request_id", requestID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := s.enqueueLifecycleEvent(ctx, tx, l, eventSubmitted, ""); err != nil {
		s.logger.Error("submit leave enqueue outbox failed", zap.Int64("leave_id", l.ID), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("submit leave success",
		zap.String("request_id", requestID),
		zap.Int64("leave_id", l.ID),
		zap.String("employee_id", l.EmployeeID),
		zap.Bool("medical_document", l.MedicalDocument != nil),
	)

	return mapToResponse(*l), nil
}

// attachMedicalDocument stores the document of a sick leave longer than the
// threshold and records its URL on the request.
func (s *service) attachMedicalDocument(ctx context.Context, l *LeaveRequest, document *Attachment) error {
	days, err := s.businessDays(ctx, l.LeaveStartDate, l.LeaveEndDate)
	if err != nil {
		s.logger.Error("submit leave holiday lookup failed", zap.Error(err))
		return err
	}
	if days <= MedicalDocumentThresholdDays {
		return nil
	}

	if document == nil || document.Size == 0 {
		if s.cfg.RequireMedicalDocument {
			return leaveerrors.ErrMedicalDocumentRequired
		}
		s.logger.Info("sick leave submitted without medical document",
			zap.String("employee_id", l.EmployeeID),
			zap.Int("business_days", days),
		)
		return nil
	}

	name := storage.DocumentName(MedicalDocumentFileType, document.Filename)
	url, err := s.documents.Upload(ctx, document.Content, document.Size, name)
	if err != nil {
		s.logger.Error("medical document upload failed", zap.String("name", name), zap.Error(err))
		if errors.Is(err, storage.ErrContainerNotFound) {
			return leaveerrors.ErrDocumentContainerMissing.Because(err)
		}
		if errors.Is(err, storage.ErrObjectExists) {
			return leaveerrors.ErrDocumentExists.Because(err)
		}
		return err
	}

	l.MedicalDocument = &url
	return nil
}

func (s *service) businessDays(ctx context.Context, start, end time.Time) (int, error) {
	holidays := calendar.NewSet()
	for _, year := range calendar.YearsBetween(start, end) {
		set, err := s.holidays.HolidaysForYear(ctx, year)
		if err != nil {
			return 0, err
		}
		holidays.Merge(set)
	}
	return calendar.CountBusinessDays(start, end, holidays)
}

func (s *service) Approve(ctx context.Context, id int64) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, id int64, reason string) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, id, StatusRejected, &reason)
}

func (s *service) transitionLeaveStatus(ctx context.Context, id int64, targetStatus Status, rejectionReason *string) (LeaveResponse, error) {
	s.logger.Debug("transition leave status requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("leave_id", id),
		zap.String("target_status", string(targetStatus)),
	)

	if targetStatus == StatusRejected && (rejectionReason == nil || *rejectionReason == "") {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if !isAllowedStatusTransition(l.LeaveStatus, targetStatus) {
		s.logger.Warn("transition leave status invalid",
			zap.Int64("leave_id", id),
			zap.String("from_status", string(l.LeaveStatus)),
			zap.String("to_status", string(targetStatus)),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}
	if l.LeaveStatus == targetStatus {
		s.logger.Info("transition leave status unchanged",
			zap.Int64("leave_id", id),
			zap.String("status", string(targetStatus)),
		)
		return mapToResponse(l), nil
	}

	l.LeaveStatus = targetStatus
	eventType := eventApproved
	reason := ""
	switch targetStatus {
	case StatusApproved:
		now := time.Now().UTC()
		l.ApprovedAt = &now
		l.RejectionReason = nil
	case StatusRejected:
		l.ApprovedAt = nil
		l.RejectionReason = rejectionReason
		eventType = eventRejected
		reason = *rejectionReason
	}

	if err := qtx.Update(ctx, &l); err != nil {
		s.logger.Error("transition leave status persist failed",
			zap.Int64("leave_id", id),
			zap.String("target_status", string(targetStatus)),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := s.enqueueLifecycleEvent(ctx, tx, &l, eventType, reason); err != nil {
		s.logger.Error("transition leave status enqueue outbox failed", zap.Int64("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("transition leave status commit failed",
			zap.Int64("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("transition leave status success",
		zap.Int64("leave_id", id),
		zap.String("status", string(targetStatus)),
	)
	return mapToResponse(l), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("update leave requested",
		zap.Int64("leave_id", id),
		zap.String("target_status", req.LeaveStatus),
	)

	startDate, endDate, err := parseRange(req.LeaveStartDate, req.LeaveEndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	leaveType, err := ParseType(req.LeaveType)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	targetStatus := l.LeaveStatus
	if req.LeaveStatus != "" {
		if targetStatus, err = ParseStatus(req.LeaveStatus); err != nil {
			return LeaveResponse{}, err
		}
	}
	if !isAllowedStatusTransition(l.LeaveStatus, targetStatus) {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}
	if targetStatus != l.LeaveStatus {
		switch targetStatus {
		case StatusApproved:
			now := time.Now().UTC()
			l.ApprovedAt = &now
		case StatusRejected:
			if req.LeaveReason == "" {
				return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
			}
			reason := req.LeaveReason
			l.RejectionReason = &reason
		}
	}

	l.EmployeeID = req.EmployeeID
	l.FirstName = req.FirstName
	l.LastName = req.LastName
	l.Email = req.Email
	l.Position = req.Position
	l.Phone = req.Phone
	l.ManagerID = req.ManagerID
	l.ManagerName = req.ManagerName
	l.ManagerEmail = req.ManagerEmail
	l.LeaveType = leaveType
	l.LeaveStatus = targetStatus
	l.LeaveStartDate = startDate
	l.LeaveEndDate = endDate
	l.LeaveReason = req.LeaveReason
	l.Comments = req.Comments
	l.Duration = req.Duration
	l.DurationType = req.DurationType
	l.MedicalDocument = req.MedicalDocument

	if err := qtx.Update(ctx, &l); err != nil {
		s.logger.Error("update leave persist failed",
			zap.Int64("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := s.enqueueLifecycleEvent(ctx, tx, &l, eventUpdated, ""); err != nil {
		s.logger.Error("update leave enqueue outbox failed", zap.Int64("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave commit failed",
			zap.Int64("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("update leave success",
		zap.Int64("leave_id", id),
		zap.String("status", string(l.LeaveStatus)),
	)

	return mapToResponse(l), nil
}

func (s *service) Delete(ctx context.Context, id int64) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete leave begin tx failed", zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", leaveerrors.ErrLeaveNotFound
		}
		return "", err
	}

	affected, err := qtx.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete leave persist failed", zap.Int64("leave_id", id), zap.Error(err))
		return "", err
	}
	if affected == 0 {
		return "", leaveerrors.ErrLeaveNotFound
	}
	if err := s.enqueueLifecycleEvent(ctx, tx, &l, eventDeleted, ""); err != nil {
		s.logger.Error("delete leave enqueue outbox failed", zap.Int64("leave_id", id), zap.Error(err))
		return "", err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("delete leave commit failed", zap.Int64("leave_id", id), zap.Error(err))
		return "", err
	}
	s.logger.Info("delete leave success", zap.Int64("leave_id", id))

	return fmt.Sprintf("Leave request %d deleted successfully", id), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByStatusAndManager(ctx context.Context, managerID string, status Status) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByManagerAndStatus(ctx, managerID, status)
	if err != nil {
		s.logger.Error("list leaves by manager and status failed",
			zap.String("manager_id", managerID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByEmployeeAndStatus(ctx context.Context, employeeID string, status Status) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByEmployeeAndStatus(ctx, employeeID, status)
	if err != nil {
		s.logger.Error("list leaves by employee and status failed",
			zap.String("employee_id", employeeID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByManager(ctx context.Context, managerID string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	if endDate.After(startDate.AddDate(0, 0, MaxLeaveSpanDays-1)) {
		return time.Time{}, time.Time{}, leaveerrors.ErrLeaveRangeTooLong
	}
	return startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(calendar.DateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID,
		EmployeeID:      l.EmployeeID,
		FirstName:       l.FirstName,
		LastName:        l.LastName,
		Email:           l.Email,
		Position:        l.Position,
		Phone:           l.Phone,
		ManagerID:       l.ManagerID,
		ManagerName:     l.ManagerName,
		ManagerEmail:    l.ManagerEmail,
		LeaveType:       string(l.LeaveType),
		LeaveStatus:     string(l.LeaveStatus),
		LeaveStartDate:  l.LeaveStartDate.Format(calendar.DateLayout),
		LeaveEndDate:    l.LeaveEndDate.Format(calendar.DateLayout),
		LeaveReason:     l.LeaveReason,
		Comments:        l.Comments,
		Duration:        l.Duration,
		DurationType:    l.DurationType,
		MedicalDocument: l.MedicalDocument,
		RejectionReason: l.RejectionReason,
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if !l.CreatedAt.IsZero() {
		resp.CreatedAt = l.CreatedAt.Format(time.RFC3339)
	}
	if !l.UpdatedAt.IsZero() {
		resp.UpdatedAt = l.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
