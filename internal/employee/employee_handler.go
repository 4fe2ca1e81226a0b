package employee

import (
	"net/http"
	"strconv"
	"strings"

	employeeerrors "employee-service/internal/employee/errors"
	"employee-service/internal/shared/apperror"
	"employee-service/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeResult(c *gin.Context, res Result) {
	if res.Model == nil {
		response.NoContent(c)
		return
	}
	response.Model(c, res.StatusCode, res.Location, res.Model)
}

func (h *Handler) bindDTO(c *gin.Context) (EmployeeDTO, bool) {
	var dto EmployeeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		h.logger.Debug("http employee body validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return EmployeeDTO{}, false
	}
	return dto, true
}

func (h *Handler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return 0, false
	}
	return id, true
}

func (h *Handler) FindAll(c *gin.Context) {
	resp, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Model(c, http.StatusOK, "", resp)
}

func (h *Handler) FindByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Model(c, http.StatusOK, "", resp)
}

func (h *Handler) FindByEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		h.writeServiceError(c, employeeerrors.ErrMissingEmail)
		return
	}

	resp, err := h.service.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Model(c, http.StatusOK, "", resp)
}

func (h *Handler) Create(c *gin.Context) {
	dto, ok := h.bindDTO(c)
	if !ok {
		return
	}

	res, err := h.service.NewEmployee(c.Request.Context(), dto)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeResult(c, res)
}

func (h *Handler) Replace(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	dto, ok := h.bindDTO(c)
	if !ok {
		return
	}

	res, err := h.service.Save(c.Request.Context(), dto, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeResult(c, res)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	res, err := h.service.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeResult(c, res)
}
