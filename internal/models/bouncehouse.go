package models

import "time"

// Payment methods accepted at the bounce house table. No payment
// lifecycle here; the waiver is the record of interest.
var BouncePaymentMethods = []string{"cash", "card", "zelle", "other"}

const (
	SignatureDraw  = "draw"
	SignatureTyped = "type"
)

const (
	BounceMinChildren = 1
	BounceMaxChildren = 5
	BounceMinAge      = 1
	BounceMaxAge      = 17
)

type BounceHouseRegistration struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RegistrationID string `gorm:"uniqueIndex;not null" json:"registrationId"`

	ParentName  string `json:"parentName"`
	ParentEmail string `gorm:"index" json:"parentEmail"`
	ParentPhone string `json:"parentPhone"`

	PaymentMethod      string `json:"paymentMethod"`
	OtherPaymentMethod string `json:"otherPaymentMethod,omitempty"`

	Children []BounceChild `gorm:"foreignKey:RegistrationRef" json:"children"`

	// Signature holds a data URI for "draw" and a typed name for "type".
	Signature     string `json:"signature"`
	SignatureType string `json:"signatureType"`

	AcceptedTerms     bool       `json:"acceptedTerms"`
	AcceptedTermsDate *time.Time `json:"acceptedTermsDate"`

	Notes    string `json:"notes"`
	IsActive bool   `json:"isActive"`
}

type BounceChild struct {
	ID              uint `gorm:"primaryKey" json:"-"`
	RegistrationRef uint `gorm:"index" json:"-"`

	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"` // male | female
}
