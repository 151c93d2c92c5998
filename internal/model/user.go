package model

import "time"

// User represents a shooter with review-gate and penalty metadata.
type User struct {
	UserID            string    `json:"userId"`
	Country           string    `json:"country"`
	HasReviewed       bool      `json:"hasReviewed"`
	IncorrectUploads  int       `json:"incorrectUploads"`
	IncorrectReviews  int       `json:"incorrectReviews"`
	Last100Percentage float64   `json:"last100Percentage"`
	AllTimeShots      int       `json:"allTimeShots"`
	AllTimeAttempts   int       `json:"allTimeAttempts"`
	FirstSeen         time.Time `json:"-"`
	LastActive        time.Time `json:"-"`
}

// UserResponse is the API response for user lookups.
type UserResponse struct {
	UserID            string  `json:"userId"`
	Country           string  `json:"country"`
	HasReviewed       bool    `json:"hasReviewed"`
	IncorrectUploads  int     `json:"incorrectUploads"`
	IncorrectReviews  int     `json:"incorrectReviews"`
	Last100Percentage float64 `json:"last100Percentage"`
	AllTimeShots      int     `json:"allTimeShots"`
	AllTimeAttempts   int     `json:"allTimeAttempts"`
}

// StatsResponse is the API response for global statistics.
type StatsResponse struct {
	TotalUsers       int            `json:"totalUsers"`
	TotalVideos      int            `json:"totalVideos"`
	VerifiedVideos   int            `json:"verifiedVideos"`
	PendingReviews   int            `json:"pendingReviews"`
	OpenDisputes     int            `json:"openDisputes"`
	ActiveUsers24h   int            `json:"activeUsers24h"`
	PendingByCountry map[string]int `json:"pendingByCountry"`
}
