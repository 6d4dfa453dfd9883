package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/peopledesk/internal/container"
	handlers "github.com/oksasatya/peopledesk/internal/interface/http"
	"github.com/oksasatya/peopledesk/internal/interface/middleware"
	"github.com/oksasatya/peopledesk/pkg/helpers"
)

// AuthModule wires the public identity endpoints plus the authenticated
// password update.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	otpLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	verifyLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/forget-password", otpLimiter, m.Handler.ForgotPassword)
	rg.POST("/send-otp", otpLimiter, m.Handler.SendOTP)
	rg.POST("/resend-otp", otpLimiter, m.Handler.SendOTP)
	rg.POST("/verify-otp", verifyLimiter, m.Handler.VerifyOTP)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/update-password", m.Handler.UpdatePassword)
	}
}
