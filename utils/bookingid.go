package utils

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"
)

// randomToken generates a secure random token of the specified length.
// It returns a base32 encoded string (without padding) truncated to the
// desired length.
func randomToken(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	token := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(token) > length {
		token = token[:length]
	}
	return token, nil
}

// NewBookingID mints a human-readable booking identifier in the
// BK-<yyyymmdd>-<random> form. IDs are generated once at creation and
// never reused.
func NewBookingID(now time.Time) (string, error) {
	suffix, err := randomToken(6)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BK-%s-%s", now.Format("20060102"), suffix), nil
}

// NewArrivalCode generates the 6-character code a cleaner must present on
// arrival before a booking moves to in-progress.
func NewArrivalCode() (string, error) {
	return randomToken(6)
}
