package models

import "time"

// Vendor types accepted on registration.
var VendorTypes = []string{"food", "clothing", "accessories", "books", "crafts", "services", "other"}

// Booth types for the per-booth pricing variant.
const (
	BoothPremium  = "premium"
	BoothStandard = "standard"
)

// Vendor is a bazaar vendor registration. Depending on the deployment's
// pricing variant the record carries either a Booths list or a single
// BoothLocation; TotalBoothPrice is resolved server-side at creation and
// never recalculated.
type Vendor struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	VendorID string `gorm:"uniqueIndex;not null" json:"vendorId"`

	BusinessName        string `json:"businessName"`
	ContactPerson       string `json:"contactPerson"`
	Email               string `gorm:"index" json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	Website             string `json:"website"`
	VendorType          string `json:"vendorType"`
	BusinessDescription string `json:"businessDescription"`

	Booths          []VendorBooth `gorm:"foreignKey:OwnerID" json:"booths"`
	BoothLocation   string        `json:"boothLocation,omitempty"`
	TotalBoothPrice float64       `json:"totalBoothPrice"`
	OriginalPrice   *float64      `json:"originalPrice"`
	DiscountApplied *float64      `json:"discountApplied"`

	Payment

	SpecialRequirements string     `json:"specialRequirements"`
	AcceptedTerms       bool       `json:"acceptedTerms"`
	AcceptedTermsDate   *time.Time `json:"acceptedTermsDate"`
	Comments            string     `json:"comments"`

	Notes    string `json:"notes"`
	IsActive bool   `json:"isActive"`
}

type VendorBooth struct {
	ID      uint `gorm:"primaryKey" json:"-"`
	OwnerID uint `gorm:"index" json:"-"`

	BoothID   string  `json:"boothId"`
	BoothType string  `json:"boothType"`
	Price     float64 `json:"price"`
}

// FoodVendor pays a flat fee rather than per-booth pricing.
type FoodVendor struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	VendorID string `gorm:"uniqueIndex;not null" json:"vendorId"`

	BusinessName    string `json:"businessName"`
	ContactPerson   string `json:"contactPerson"`
	Email           string `gorm:"index" json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Website         string `json:"website"`
	MenuDescription string `json:"menuDescription"`

	VendorFee float64 `json:"vendorFee"`

	Payment

	SpecialRequirements string     `json:"specialRequirements"`
	AcceptedTerms       bool       `json:"acceptedTerms"`
	AcceptedTermsDate   *time.Time `json:"acceptedTermsDate"`
	Comments            string     `json:"comments"`

	Notes    string `json:"notes"`
	IsActive bool   `json:"isActive"`
}
