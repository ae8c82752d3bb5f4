package leave

import (
	"errors"
	"net/http"
	"strconv"

	leaveerrors "leave-approval/internal/leave/errors"
	"leave-approval/internal/shared/apperror"
	"leave-approval/internal/shared/response"
	"leave-approval/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	approvedMessage       = "Leave Request Approved"
	rejectedMessagePrefix = "Leave Request Rejected with Reason: "
)

type Handler struct {
	service   Service
	documents storage.DocumentStore
	logger    *zap.Logger
}

func NewHandler(service Service, documents storage.DocumentStore, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, documents: documents, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// writeSubmitError embeds the cause of unexpected failures in the message,
// unlike writeServiceError.
func (h *Handler) writeSubmitError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		h.writeServiceError(c, err)
		return
	}
	h.logger.Error("submit leave failed", zap.Error(err))
	response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "An error occurred: "+err.Error(), nil)
}

// writeList answers 404 with an empty list instead of 200 when nothing
// matched.
func (h *Handler) writeList(c *gin.Context, resp []LeaveResponse, err error) {
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if len(resp) == 0 {
		response.Fail(c, http.StatusNotFound, []LeaveResponse{}, leaveerrors.ErrNoLeaveRequests.Code, leaveerrors.ErrNoLeaveRequests.Message)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return 0, false
	}
	return id, true
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeaveRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("http submit leave validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, httpErr.Message, err.Error())
		return
	}

	var document *Attachment
	if req.MedicalDocument != nil {
		f, err := req.MedicalDocument.Open()
		if err != nil {
			h.writeSubmitError(c, err)
			return
		}
		defer f.Close()
		document = &Attachment{
			Filename: req.MedicalDocument.Filename,
			Size:     req.MedicalDocument.Size,
			Content:  f,
		}
	}

	resp, err := h.service.Submit(c.Request.Context(), req, document)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if _, err := h.service.Approve(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, approvedMessage, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	reason := c.Param("leaveReason")

	if _, err := h.service.Reject(c.Request.Context(), id, reason); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rejectedMessagePrefix+reason, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update leave validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, httpErr.Message, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	msg, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, msg, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil || len(resp) == 0 || c.Query("page") == "" {
		h.writeList(c, resp, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetByStatusAndManager(c *gin.Context) {
	status, err := ParseStatus(c.Param("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetByStatusAndManager(c.Request.Context(), c.Param("managerId"), status)
	h.writeList(c, resp, err)
}

func (h *Handler) GetPendingByEmployee(c *gin.Context) {
	h.getByEmployeeAndStatus(c, StatusPending)
}

func (h *Handler) GetApprovedByEmployee(c *gin.Context) {
	h.getByEmployeeAndStatus(c, StatusApproved)
}

func (h *Handler) GetRejectedByEmployee(c *gin.Context) {
	h.getByEmployeeAndStatus(c, StatusRejected)
}

func (h *Handler) getByEmployeeAndStatus(c *gin.Context, status Status) {
	resp, err := h.service.GetByEmployeeAndStatus(c.Request.Context(), c.Param("employeeId"), status)
	h.writeList(c, resp, err)
}

func (h *Handler) GetByManager(c *gin.Context) {
	resp, err := h.service.GetByManager(c.Request.Context(), c.Param("managerId"))
	h.writeList(c, resp, err)
}

// GetByEmployee answers 200 even when the employee has no requests.
func (h *Handler) GetByEmployee(c *gin.Context) {
	resp, err := h.service.GetByEmployee(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp == nil {
		resp = []LeaveResponse{}
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetFileSize(c *gin.Context) {
	fileName := c.Query("fileName")
	if fileName == "" {
		e := leaveerrors.ErrFileNameRequired
		response.Fail(c, e.HTTPStatus, FileSizeResponse{}, e.Code, e.Message)
		return
	}

	size, err := h.documents.Size(c.Request.Context(), fileName)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, FileSizeResponse{Size: size}, nil)
	case errors.Is(err, storage.ErrObjectNotFound), errors.Is(err, storage.ErrContainerNotFound):
		e := leaveerrors.ErrFileNotFound
		response.Fail(c, e.HTTPStatus, FileSizeResponse{}, e.Code, e.Message)
	default:
		h.logger.Error("file size lookup failed", zap.String("file_name", fileName), zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, FileSizeResponse{}, apperror.CodeInternalError, apperror.ErrInternal.Message)
	}
}
