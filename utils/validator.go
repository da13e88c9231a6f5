// utils/validator.go - Input validation
package utils

import (
	"strings"
	"time"
)

const earliestVehicleYear = 1900

// ValidateVehicleYear checks the model year is plausible. Next year's models
// are already on the road, anything beyond that is a typo.
func ValidateVehicleYear(year int) bool {
	return year >= earliestVehicleYear && year <= time.Now().Year()+1
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
