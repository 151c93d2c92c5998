package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/arben-grepi/Clutch3-sub000/internal/model"
)

// Field length limits matching database schema constraints.
const (
	MaxVideoIDLen = 36 // videos.video_id VARCHAR(36), server-generated UUID
	MaxUserIDLen  = 64 // users.user_id VARCHAR(64), iterated SHA256 hash
	MaxReasonLen  = 500
)

var (
	// videoIDRe matches server-generated UUIDs.
	videoIDRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	// userIDRe matches user IDs: hex SHA256 hashes (64 chars) or shorter hashed IDs.
	userIDRe = regexp.MustCompile(`^[0-9a-f]+$`)
	// countryRe matches ISO 3166-1 alpha-2 country codes.
	countryRe = regexp.MustCompile(`^[A-Z]{2}$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVideoID checks that a video ID is a well-formed UUID.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) > MaxVideoIDLen || !videoIDRe.MatchString(id) {
		return "", "videoId must be a UUID"
	}
	return id, ""
}

// ValidateUserID checks that a user ID is a valid hex hash.
func ValidateUserID(id string) (string, string) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return "", "userId is required"
	}
	if len(id) > MaxUserIDLen {
		return "", "userId must be at most 64 characters"
	}
	if !userIDRe.MatchString(id) {
		return "", "userId must be a hexadecimal hash"
	}
	return id, ""
}

// ValidateCountry checks for an uppercase two-letter country code.
func ValidateCountry(country string) (string, string) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return "", "country is required"
	}
	if !countryRe.MatchString(country) {
		return "", "country must be a two-letter code"
	}
	return country, ""
}

// ValidateShots checks a shot count is within one session's range. A nil
// count is legal where it means a discard verdict.
func ValidateShots(shots *int) string {
	if shots == nil {
		return ""
	}
	if *shots < 0 || *shots > model.SessionShots {
		return "shots must be between 0 and 10"
	}
	return ""
}

// ValidateReason trims and truncates a free-text dispute reason.
func ValidateReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	r := strings.TrimSpace(*reason)
	if r == "" {
		return nil
	}
	if len(r) > MaxReasonLen {
		r = r[:MaxReasonLen]
	}
	return &r
}
