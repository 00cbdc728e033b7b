package common

import "errors"

var (
	// ErrLoginRequired is returned by guarded commands when no token is stored.
	ErrLoginRequired = errors.New("login required")

	// ErrNoResetToken is returned when a password reset is attempted before an OTP was requested.
	ErrNoResetToken = errors.New("no reset token, request an OTP first")

	// ErrResetTokenExpired is returned when the held reset token has expired.
	ErrResetTokenExpired = errors.New("reset token expired")
)
