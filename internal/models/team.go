package models

import "time"

// Competition categories. The fee table and the ID-photo requirement key
// off these values.
var TeamCategories = []string{
	"boys_elem_1_3",
	"boys_elem_4_5",
	"girls_elem_1_5",
	"boys_middle",
	"girls_middle",
	"boys_high_competitive",
	"boys_high_recreational",
	"girls_high",
	"mens_open",
}

var TeamCategoryDisplayNames = map[string]string{
	"boys_elem_1_3":          "Boys Elementary (1-3rd)",
	"boys_elem_4_5":          "Boys Elementary (4-5th)",
	"girls_elem_1_5":         "Girls Elementary (1-5th)",
	"boys_middle":            "Boys Middle School (6-8th)",
	"girls_middle":           "Girls Middle School (6-8th)",
	"boys_high_competitive":  "Boys High School (9-12th) Competitive",
	"boys_high_recreational": "Boys High School (9-12th) Recreational",
	"girls_high":             "Girls High School (9-12th)",
	"mens_open":              "Men's Open/Alumni",
}

// Registration status values for teams.
const (
	RegPending    = "pending"
	RegApproved   = "approved"
	RegRejected   = "rejected"
	RegWaitlisted = "waitlisted"
	RegCancelled  = "cancelled" // players only
)

const (
	TeamMinPlayers = 5
	TeamMaxPlayers = 10
)

type Team struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TeamID string `gorm:"uniqueIndex;not null" json:"teamId"`

	TeamName     string `json:"teamName"`
	Organization string `gorm:"index" json:"organization"`
	City         string `gorm:"index" json:"city"`
	Category     string `gorm:"index" json:"category"`

	CoachName  string `json:"coachName"`
	CoachEmail string `gorm:"index" json:"coachEmail"`
	CoachPhone string `json:"coachPhone"`

	Players []TeamPlayer `gorm:"foreignKey:TeamRef" json:"players"`

	RegistrationStatus string  `gorm:"index;default:pending" json:"registrationStatus"`
	RegistrationFee    float64 `json:"registrationFee"`

	Payment

	GroupAssignment *string `json:"groupAssignment"`
	SeedNumber      *int    `json:"seedNumber"`

	EmergencyContact EmergencyContact `gorm:"embedded;embeddedPrefix:emergency_" json:"emergencyContact"`

	SpecialRequirements string `json:"specialRequirements"`
	Comments            string `json:"comments"`

	DocumentsVerified bool       `json:"documentsVerified"`
	VerifiedBy        *string    `json:"verifiedBy"`
	VerifiedDate      *time.Time `json:"verifiedDate"`

	Notes    string `json:"notes"`
	IsActive bool   `json:"isActive"`
}

type TeamPlayer struct {
	ID      uint `gorm:"primaryKey" json:"-"`
	TeamRef uint `gorm:"index" json:"-"`

	PlayerName  string    `json:"playerName"`
	DateOfBirth time.Time `json:"dateOfBirth"`

	// Required for middle/high school categories, see validate.
	IDPhotoURL          string `json:"idPhotoUrl,omitempty"`
	IDPhotoOriginalName string `json:"idPhotoOriginalName,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}
