package entities

import (
	"crypto/rand"
	"io"
	"math/big"
	"strconv"
)

const (
	OTPMin = 100000
	OTPMax = 999999
)

var otpSpan = big.NewInt(OTPMax - OTPMin + 1)

// GenerateOTP draws a 6-digit code uniformly from [OTPMin, OTPMax].
func GenerateOTP() (string, error) {
	return GenerateOTPFrom(rand.Reader)
}

// GenerateOTPFrom is GenerateOTP with an explicit entropy source.
func GenerateOTPFrom(r io.Reader) (string, error) {
	n, err := rand.Int(r, otpSpan)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+OTPMin, 10), nil
}

// OTPExpiryFrom returns the absolute expiry, in Unix seconds, for an OTP issued at createdAt.
func OTPExpiryFrom(createdAtUnix int64) int64 {
	return createdAtUnix + int64(OTPValidity.Seconds())
}
