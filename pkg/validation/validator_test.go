package validation

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gin's binding engine validates the "binding" tag.
type samplePayload struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,otp"`
	Pass  string `json:"password" binding:"required,pwd"`
}

func testValidator(t *testing.T) *validator.Validate {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	v := testValidator(t)

	err := v.Struct(samplePayload{Email: "bad", OTP: "12ab56", Pass: "short"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "otp")
	assert.Contains(t, details, "password")
	assert.Equal(t, "must be a valid email", details["email"])
}

func TestToDetailsValidPayload(t *testing.T) {
	v := testValidator(t)

	err := v.Struct(samplePayload{Email: "ok@example.com", OTP: "123456", Pass: "password123"})
	assert.NoError(t, err)
	assert.Nil(t, ToDetails(nil))
}

func TestToDetailsNonValidationError(t *testing.T) {
	details := ToDetails(assert.AnError)
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, details)
}
