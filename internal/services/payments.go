package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bazaarhq/backoffice/internal/models"
)

// PaymentRequest is the PATCH /api/<entity>/{id}/payment body. The
// admin is trusted: any valid status is stored as-is, so moving a
// completed record back to pending is allowed.
type PaymentRequest struct {
	PaymentStatus string     `json:"paymentStatus"`
	PaymentMethod string     `json:"paymentMethod"`
	TransactionID string     `json:"transactionId"`
	PaymentDate   *time.Time `json:"paymentDate"`
}

func (r PaymentRequest) check() error {
	if !models.ValidPaymentStatus(r.PaymentStatus) {
		return fmt.Errorf("invalid payment status %q", r.PaymentStatus)
	}
	return nil
}

// apply writes the request onto the embedded payment state and reports
// whether the status landed on completed. Completion stamps the payment
// date with now unless the request carries an explicit date.
func apply(p *models.Payment, req PaymentRequest, now time.Time) bool {
	p.PaymentStatus = req.PaymentStatus
	if req.PaymentMethod != "" {
		p.PaymentMethod = req.PaymentMethod
	}
	if req.TransactionID != "" {
		tid := req.TransactionID
		p.TransactionID = &tid
	}
	if req.PaymentStatus != models.PaymentCompleted {
		return false
	}
	if req.PaymentDate != nil {
		d := *req.PaymentDate
		p.PaymentDate = &d
	} else {
		t := now
		p.PaymentDate = &t
	}
	return true
}

// UpdateVendorPayment applies a payment transition to a vendor looked
// up by external ID. gorm.ErrRecordNotFound passes through so handlers
// can answer with a not-found result instead of a generic failure.
func UpdateVendorPayment(gdb *gorm.DB, vendorID string, req PaymentRequest) (*models.Vendor, error) {
	if err := req.check(); err != nil {
		return nil, err
	}
	var v models.Vendor
	if err := gdb.Where("vendor_id = ?", vendorID).First(&v).Error; err != nil {
		return nil, err
	}
	apply(&v.Payment, req, time.Now())
	if err := gdb.Save(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func UpdateFoodVendorPayment(gdb *gorm.DB, vendorID string, req PaymentRequest) (*models.FoodVendor, error) {
	if err := req.check(); err != nil {
		return nil, err
	}
	var v models.FoodVendor
	if err := gdb.Where("vendor_id = ?", vendorID).First(&v).Error; err != nil {
		return nil, err
	}
	apply(&v.Payment, req, time.Now())
	if err := gdb.Save(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func UpdateSponsorPayment(gdb *gorm.DB, sponsorID string, req PaymentRequest) (*models.Sponsor, error) {
	if err := req.check(); err != nil {
		return nil, err
	}
	var s models.Sponsor
	if err := gdb.Where("sponsor_id = ?", sponsorID).First(&s).Error; err != nil {
		return nil, err
	}
	apply(&s.Payment, req, time.Now())
	if err := gdb.Save(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateTeamPayment additionally flips registrationStatus to approved
// when the payment completes, in the same save.
func UpdateTeamPayment(gdb *gorm.DB, teamID string, req PaymentRequest) (*models.Team, error) {
	if err := req.check(); err != nil {
		return nil, err
	}
	var t models.Team
	if err := gdb.Where("team_id = ?", teamID).First(&t).Error; err != nil {
		return nil, err
	}
	if apply(&t.Payment, req, time.Now()) {
		t.RegistrationStatus = models.RegApproved
	}
	if err := gdb.Save(&t).Error; err != nil {
		return nil, err
	}
	if err := gdb.Preload("Players").Where("team_id = ?", teamID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdatePlayerPayment mirrors UpdateTeamPayment for practice players.
func UpdatePlayerPayment(gdb *gorm.DB, playerID string, req PaymentRequest) (*models.Player, error) {
	if err := req.check(); err != nil {
		return nil, err
	}
	var p models.Player
	if err := gdb.Where("player_id = ?", playerID).First(&p).Error; err != nil {
		return nil, err
	}
	if apply(&p.Payment, req, time.Now()) {
		p.RegistrationStatus = models.RegApproved
	}
	if err := gdb.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
