package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	employeeIDPrefix = "EMP"
	firstEmployeeID  = "EMP001"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail reports whether email looks like a mailbox address.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateEmployeeID reports whether the business code is non-blank.
func ValidateEmployeeID(employeeID string) bool {
	return len(strings.TrimSpace(employeeID)) > 0
}

// GenerateNextEmployeeID returns the code following lastID, e.g. EMP007 -> EMP008.
// An empty or unparsable lastID yields EMP001.
func GenerateNextEmployeeID(lastID string) string {
	if lastID == "" {
		return firstEmployeeID
	}

	num, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(lastID, employeeIDPrefix, "")))
	if err != nil {
		return firstEmployeeID
	}

	return fmt.Sprintf("%s%03d", employeeIDPrefix, num+1)
}
