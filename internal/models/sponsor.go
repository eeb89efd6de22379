package models

import "time"

type Sponsor struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	SponsorID string `gorm:"uniqueIndex;not null" json:"sponsorId"`

	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `gorm:"index" json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Website       string `json:"website"`
	Logo          string `json:"logo"`

	Tier   string  `gorm:"index" json:"tier"`
	Amount float64 `json:"amount"`

	Payment

	Comments string `json:"comments"`
	Notes    string `json:"notes"`
	IsActive bool   `json:"isActive"`
}
