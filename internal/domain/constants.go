package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxGroupMembers    = 10
	MaxNameLength      = 100
	MaxStudentIDLength = 32
	MaxEmailLength     = 254
	MaxPhoneLength     = 32
	FirstQueuePosition = 1
)
