// File: internal/service/reset.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// ResetTokenTTL is how long a password-reset token stays valid.
const ResetTokenTTL = time.Hour

var randRead = rand.Read

// NewResetToken returns a 40-character hex token for password recovery.
func NewResetToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := randRead(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
