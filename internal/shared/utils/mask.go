package utils

import "strings"

// MaskMobile masks a phone number for safe logging, keeping the last four digits.
// Example: "9876543210" -> "******3210"
func MaskMobile(mobile string) string {
	mobile = strings.TrimSpace(mobile)
	if len(mobile) <= 4 {
		return "***"
	}
	return strings.Repeat("*", len(mobile)-4) + mobile[len(mobile)-4:]
}
