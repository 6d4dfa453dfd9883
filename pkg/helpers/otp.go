package helpers

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// OTP helpers

// KeyOTP is the Redis key holding the in-flight OTP code for an email.
func KeyOTP(email string) string {
	return "otp:" + email
}

// GenOTPCode generates a secure random 6-digit OTP code, uniformly
// distributed in [100000, 999999].
func GenOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
