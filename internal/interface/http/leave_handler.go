package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/peopledesk/internal/application"
	"github.com/oksasatya/peopledesk/internal/domain/entity"
	"github.com/oksasatya/peopledesk/pkg/response"
	"github.com/oksasatya/peopledesk/pkg/validation"
)

type LeaveHandler struct {
	Svc    *application.LeaveService
	Logger *logrus.Logger
}

func NewLeaveHandler(svc *application.LeaveService, logger *logrus.Logger) *LeaveHandler {
	return &LeaveHandler{Svc: svc, Logger: logger}
}

type createLeaveRequest struct {
	LeaveType string    `json:"leave_type" binding:"required,oneof=PLANNED EMERGENCY"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required,gtefield=StartDate"`
	Reason    string    `json:"reason" binding:"required,min=10"`
}

func leavePayload(l *entity.Leave) gin.H {
	return gin.H{
		"id":         l.ID,
		"user_id":    l.UserID,
		"leave_type": l.LeaveType,
		"start_date": l.StartDate,
		"end_date":   l.EndDate,
		"reason":     l.Reason,
		"status":     l.Status,
		"created_at": l.CreatedAt,
		"updated_at": l.UpdatedAt,
	}
}

// Create POST /api/leaves
func (h *LeaveHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.CreateLeave(c.Request.Context(), uid, application.CreateLeaveInput{
		LeaveType: entity.LeaveType(req.LeaveType),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, leavePayload(l), "leave request created", nil)
}

// List GET /api/leaves?leave_type=&page=&limit=
func (h *LeaveHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	leaveType := entity.LeaveType(c.Query("leave_type"))
	if leaveType != "" && !leaveType.Valid() {
		response.Error[any](c, http.StatusBadRequest, "invalid leave_type", nil)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	res, err := h.Svc.ListLeaves(c.Request.Context(), uid, leaveType, page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	leaves := make([]gin.H, 0, len(res.Leaves))
	for _, l := range res.Leaves {
		leaves = append(leaves, leavePayload(l))
	}
	response.Success(c, http.StatusOK, gin.H{"leaves": leaves}, "leave requests", gin.H{
		"total":       res.Total,
		"page":        res.Page,
		"total_pages": res.TotalPages,
	})
}

// Get GET /api/leaves/:leaveId
func (h *LeaveHandler) Get(c *gin.Context) {
	uid := c.GetString("userID")
	l, err := h.Svc.GetLeave(c.Request.Context(), c.Param("leaveId"), uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, leavePayload(l), "leave request", nil)
}
