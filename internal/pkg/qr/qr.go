// Package qr resolves scanned badge payloads to employee ids. Rendering the
// payload into an actual QR image is left to the frontend/printing side.
package qr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidPayload = errors.New("invalid QR payload")

// Accepts "employee:<id>", case-insensitive, with optional whitespace
// between the prefix and the id, e.g. "EMPLOYEE: 5" or "employee:uuid".
var payloadRegex = regexp.MustCompile(`(?i)^employee[:\s]\s*([A-Za-z0-9-]+)$`)

// Encode builds the badge payload stored alongside an employee record.
func Encode(employeeID string) string {
	return fmt.Sprintf("employee:%s", employeeID)
}

// Parse extracts the employee id from a scanned payload.
func Parse(payload string) (string, error) {
	match := payloadRegex.FindStringSubmatch(strings.TrimSpace(payload))
	if match == nil {
		return "", ErrInvalidPayload
	}
	return match[1], nil
}
