package config

import "time"

// Application-wide constants organized by domain

// UI and Display Constants
const (
	// Pagination
	LeaderboardPageSize = 10
	LeaderboardTopN     = 50

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00
	DrawColor    = 0x99AAB5
)

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout   = 30 * time.Second
	CommandTimeout        = 5 * time.Second
	UsernameLookupTimeout = 3 * time.Second

	// Caches
	UsernameCacheSize = 1024
)
