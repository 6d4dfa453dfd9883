package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/peopledesk/internal/application"
	"github.com/oksasatya/peopledesk/pkg/response"
	"github.com/oksasatya/peopledesk/pkg/validation"
)

// genericResetMessage is returned from forget-password whether or not the
// email is registered, so account existence never leaks.
const genericResetMessage = "If your email is registered, you will receive an OTP shortly"

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type emailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type verifyOTPRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,otp"`
	NewPassword string `json:"new_password" binding:"omitempty,pwd"`
}

type updatePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,pwd"`
}

// Signup POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"user":         res.User.Public(),
		"access_token": res.Token,
	}, "User registered successfully", gin.H{"token_expires_at": res.TokenExpiry})
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user":         res.User.Public(),
		"access_token": res.Token,
	}, "login successful", gin.H{"token_expires_at": res.TokenExpiry})
}

// ForgotPassword POST /api/forget-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, genericResetMessage, nil)
}

// SendOTP POST /api/send-otp and /api/resend-otp
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.SendOTP(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "OTP sent successfully", nil)
}

// VerifyOTP POST /api/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.VerifyOTP(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	msg := "OTP verified successfully"
	if req.NewPassword != "" {
		msg = "Password reset successful"
	}
	response.Success[any](c, http.StatusOK, nil, msg, nil)
}

// UpdatePassword POST /api/update-password (auth required). The target email
// comes from the validated token, never from the payload.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	email := c.GetString("userEmail")
	if err := h.Svc.UpdatePassword(c.Request.Context(), email, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Password updated successfully", nil)
}
