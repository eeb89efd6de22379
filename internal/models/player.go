package models

import "time"

// Shirt sizes offered at practice registration.
var ShirtSizes = []string{"MS", "MM", "ML", "MXL", "WS", "WM", "WL", "WXL"}

var ShirtSizeDisplayNames = map[string]string{
	"MS":  "Men's Small",
	"MM":  "Men's Medium",
	"ML":  "Men's Large",
	"MXL": "Men's X-Large",
	"WS":  "Women's Small",
	"WM":  "Women's Medium",
	"WL":  "Women's Large",
	"WXL": "Women's X-Large",
}

// Player is an individual practice-session registration.
type Player struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PlayerID string `gorm:"uniqueIndex;not null" json:"playerId"`

	PlayerName    string    `json:"playerName"`
	DateOfBirth   time.Time `json:"dateOfBirth"`
	ShirtSize     string    `json:"shirtSize"`
	CurrentGrade  string    `json:"currentGrade"`
	CurrentSchool string    `json:"currentSchool"`

	// Practice team the player wants to join; free text, the admin table
	// filters on it.
	ChosenTeam string `gorm:"index" json:"chosenTeam"`

	ParentInfo ParentContact `gorm:"embedded;embeddedPrefix:parent_" json:"parentInfo"`

	// Age at the last write of DateOfBirth, not today's age.
	AgeAtRegistration int `json:"ageAtRegistration"`

	RegistrationFee float64 `json:"registrationFee"`

	Payment

	WaiverAccepted     bool       `json:"waiverAccepted"`
	WaiverAcceptedDate *time.Time `json:"waiverAcceptedDate"`

	// pending | approved | cancelled; approved is set as a side effect of
	// payment completion, never directly by the admin UI.
	RegistrationStatus string `gorm:"index;default:pending" json:"registrationStatus"`

	Comments string `json:"comments"`
	Notes    string `json:"notes"`
	IsActive bool   `json:"isActive"`
}

type ParentContact struct {
	Name  string `json:"name"`
	Email string `gorm:"index" json:"email"`
	Phone string `json:"phone"`
}
