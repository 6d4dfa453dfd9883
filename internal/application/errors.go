package application

import "errors"

// Sentinel errors surfaced by the services. Handlers map these onto the HTTP
// error taxonomy (404 / 409 / 400 / 401); the message is safe to echo to the
// caller.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrOTPExpired  = errors.New("OTP has expired or not found")
	ErrOTPMismatch = errors.New("invalid OTP")
	ErrMailSend    = errors.New("failed to send email")

	ErrLeaveNotFound = errors.New("leave request not found")
	ErrLeaveTooOld   = errors.New("cannot apply for leaves older than 3 days")
	ErrLeaveOverlap  = errors.New("you already have a leave request for these dates")
)
