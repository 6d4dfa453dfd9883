package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/peopledesk/internal/container"
	handlers "github.com/oksasatya/peopledesk/internal/interface/http"
	"github.com/oksasatya/peopledesk/internal/interface/middleware"
	"github.com/oksasatya/peopledesk/pkg/helpers"
)

// LeaveModule wires the authenticated leave-request routes.
type LeaveModule struct {
	Handler *handlers.LeaveHandler
	JWT     *helpers.JWTManager
}

func NewLeaveModule(h *handlers.LeaveHandler, jwt *helpers.JWTManager) *LeaveModule {
	return &LeaveModule{Handler: h, JWT: jwt}
}

func (m *LeaveModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/leaves", m.Handler.Create)
		auth.GET("/leaves", m.Handler.List)
		auth.GET("/leaves/:leaveId", m.Handler.Get)
	}
}
