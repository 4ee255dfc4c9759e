package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgentPisite999/agentpi-backend/internal/activity"
	"github.com/AgentPisite999/agentpi-backend/internal/approval"
	apperrors "github.com/AgentPisite999/agentpi-backend/internal/common/errors"
	"github.com/AgentPisite999/agentpi-backend/internal/common/logger"
	"github.com/AgentPisite999/agentpi-backend/internal/common/validation"
	"github.com/AgentPisite999/agentpi-backend/internal/enrollment"
	"github.com/AgentPisite999/agentpi-backend/internal/screening"
)

// Handler wires the HTTP surface to the services. Routing and status-code
// mapping only; all behavior lives one layer down.
type Handler struct {
	screenings  *screening.Service
	enrollments *enrollment.Service
	gate        *approval.Gate
	activity    *activity.Service
	logger      logger.Logger
}

func NewHandler(scr *screening.Service, enr *enrollment.Service, gate *approval.Gate, act *activity.Service, log logger.Logger) *Handler {
	return &Handler{
		screenings:  scr,
		enrollments: enr,
		gate:        gate,
		activity:    act,
		logger:      log.WithFields(map[string]interface{}{"component": "http"}),
	}
}

type createOrderRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) CreateOrder(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := validation.ValidateJSON(body, validation.CreateOrderSchema); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req createOrderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	order, err := h.enrollments.CreateOrder(c.Request.Context(), req.Amount)
	if err != nil {
		h.logger.WithError(err).Error("order creation failed", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) Verify(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid payload"})
		return
	}
	if err := validation.ValidateJSON(body, validation.VerifySchema); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	var input enrollment.VerifyInput
	if err := json.Unmarshal(body, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid payload"})
		return
	}

	if _, err := h.enrollments.VerifyAndEnroll(c.Request.Context(), &input); err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrCodeSignatureInvalid {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid signature"})
			return
		}
		h.logger.WithError(err).Error("verify failed", map[string]interface{}{
			"enrollmentId": input.EnrollmentID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) SubmitScreening(c *gin.Context) {
	input := &screening.SubmitInput{
		Name:       c.PostForm("name"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		Position:   c.PostForm("position"),
		Duration:   c.PostForm("duration"),
		OwnerEmail: c.PostForm("userEmail"),
	}

	file, err := c.FormFile("resume")
	if err == nil {
		opened, openErr := file.Open()
		if openErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": openErr.Error()})
			return
		}
		defer opened.Close()

		data, readErr := io.ReadAll(opened)
		if readErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": readErr.Error()})
			return
		}
		input.Resume = data
		input.ResumeMIME = file.Header.Get("Content-Type")
	}

	out, err := h.screenings.Submit(c.Request.Context(), input)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrCodeValidationFailed {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Resume missing"})
			return
		}
		h.logger.WithError(err).Error("screening failed", map[string]interface{}{
			"email": input.Email,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if out.Duplicate {
		c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "enrollmentId": out.EnrollmentID})
}

// screeningView is the listing shape the frontend consumes; it hides the
// submission timestamp and the owner column.
type screeningView struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
	Duration     string `json:"duration"`
	EnrollmentID string `json:"enrollmentId"`
	ResumeLink   string `json:"resumeLink"`
	Status       string `json:"status"`
}

func (h *Handler) AllScreenings(c *gin.Context) {
	email := c.Param("email")

	matches, err := h.screenings.ListByOwner(c.Request.Context(), email)
	if err != nil {
		h.logger.WithError(err).Error("screening lookup failed", map[string]interface{}{"email": email})
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if len(matches) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "not_found"})
		return
	}

	data := make([]screeningView, 0, len(matches))
	for _, rec := range matches {
		data = append(data, screeningView{
			Name:         rec.Name,
			Email:        rec.Email,
			Phone:        rec.Phone,
			Position:     rec.Position,
			Duration:     rec.Duration,
			EnrollmentID: rec.EnrollmentID,
			ResumeLink:   rec.ResumeLink,
			Status:       rec.ApprovalStatus,
		})
	}
	c.JSON(http.StatusOK, gin.H{"status": "found", "data": data})
}

func (h *Handler) CheckEnrollment(c *gin.Context) {
	email := c.Param("email")

	matches, err := h.enrollments.ListByOwner(c.Request.Context(), email)
	if err != nil {
		h.logger.WithError(err).Error("enrollment lookup failed", map[string]interface{}{"email": email})
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if len(matches) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "not_enrolled"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "enrolled", "data": matches})
}

func (h *Handler) GetStudent(c *gin.Context) {
	enrollmentID := c.Param("id")

	candidate, err := h.gate.GetApprovedCandidate(c.Request.Context(), enrollmentID)
	if err != nil {
		switch apperrors.CodeOf(err) {
		case apperrors.ErrCodeResourceNotFound:
			c.JSON(http.StatusNotFound, gin.H{"status": "not_found"})
		case apperrors.ErrCodeNotApproved:
			c.JSON(http.StatusForbidden, gin.H{"status": "not_approved"})
		default:
			h.logger.WithError(err).Error("student lookup failed", map[string]interface{}{
				"enrollmentId": enrollmentID,
			})
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "approved", "data": candidate})
}

type logRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) LogVisitor(c *gin.Context) {
	var req logRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" {
		c.JSON(http.StatusOK, gin.H{"status": "skipped", "message": "Missing name or email"})
		return
	}

	if err := h.activity.Log(c.Request.Context(), req.Name, req.Email); err != nil {
		h.logger.WithError(err).Error("visitor log failed", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
