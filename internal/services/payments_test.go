package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/bazaarhq/backoffice/internal/models"
)

func seedTeam(t *testing.T, gdb *gorm.DB) models.Team {
	t.Helper()
	tm := models.Team{
		TeamID:             "TM-TEST1-AAAAA",
		TeamName:           "Falcons",
		Category:           "boys_elem_1_3",
		RegistrationStatus: models.RegPending,
		RegistrationFee:    350,
		Payment:            models.Payment{PaymentStatus: models.PaymentPending},
	}
	if err := gdb.Create(&tm).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return tm
}

func TestTeamPaymentCompletedApprovesTeam(t *testing.T) {
	gdb := openTestDB(t)
	seedTeam(t, gdb)

	before := time.Now()
	got, err := UpdateTeamPayment(gdb, "TM-TEST1-AAAAA", PaymentRequest{
		PaymentStatus: models.PaymentCompleted,
		TransactionID: "txn-42",
	})
	if err != nil {
		t.Fatalf("UpdateTeamPayment: %v", err)
	}

	if got.PaymentStatus != models.PaymentCompleted {
		t.Errorf("paymentStatus = %q", got.PaymentStatus)
	}
	if got.RegistrationStatus != models.RegApproved {
		t.Errorf("registrationStatus = %q, want approved", got.RegistrationStatus)
	}
	if got.TransactionID == nil || *got.TransactionID != "txn-42" {
		t.Errorf("transactionId = %v", got.TransactionID)
	}
	if got.PaymentDate == nil || got.PaymentDate.Before(before) {
		t.Errorf("paymentDate = %v, want >= request time", got.PaymentDate)
	}

	// The flip happened in the same stored update, not just in memory.
	var stored models.Team
	if err := gdb.Where("team_id = ?", "TM-TEST1-AAAAA").First(&stored).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.RegistrationStatus != models.RegApproved {
		t.Errorf("stored registrationStatus = %q", stored.RegistrationStatus)
	}
}

func TestTeamPaymentExplicitDateWins(t *testing.T) {
	gdb := openTestDB(t)
	seedTeam(t, gdb)

	when := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	got, err := UpdateTeamPayment(gdb, "TM-TEST1-AAAAA", PaymentRequest{
		PaymentStatus: models.PaymentCompleted,
		PaymentDate:   &when,
	})
	if err != nil {
		t.Fatalf("UpdateTeamPayment: %v", err)
	}
	if got.PaymentDate == nil || !got.PaymentDate.Equal(when) {
		t.Errorf("paymentDate = %v, want %v", got.PaymentDate, when)
	}
}

func TestPaymentNonCompletedStoredAsIs(t *testing.T) {
	gdb := openTestDB(t)
	seedTeam(t, gdb)

	got, err := UpdateTeamPayment(gdb, "TM-TEST1-AAAAA", PaymentRequest{
		PaymentStatus: models.PaymentFailed,
	})
	if err != nil {
		t.Fatalf("UpdateTeamPayment: %v", err)
	}
	if got.PaymentStatus != models.PaymentFailed {
		t.Errorf("paymentStatus = %q", got.PaymentStatus)
	}
	if got.RegistrationStatus != models.RegPending {
		t.Errorf("registrationStatus should stay pending, got %q", got.RegistrationStatus)
	}
	if got.PaymentDate != nil {
		t.Errorf("paymentDate should stay nil, got %v", got.PaymentDate)
	}
}

// No transition policing: walking completed back to pending is allowed.
func TestPaymentBackwardsTransitionAllowed(t *testing.T) {
	gdb := openTestDB(t)
	seedTeam(t, gdb)

	if _, err := UpdateTeamPayment(gdb, "TM-TEST1-AAAAA", PaymentRequest{PaymentStatus: models.PaymentCompleted}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	got, err := UpdateTeamPayment(gdb, "TM-TEST1-AAAAA", PaymentRequest{PaymentStatus: models.PaymentPending})
	if err != nil {
		t.Fatalf("walk back: %v", err)
	}
	if got.PaymentStatus != models.PaymentPending {
		t.Errorf("paymentStatus = %q, want pending", got.PaymentStatus)
	}
}

func TestPaymentInvalidStatus(t *testing.T) {
	gdb := openTestDB(t)
	seedTeam(t, gdb)

	if _, err := UpdateTeamPayment(gdb, "TM-TEST1-AAAAA", PaymentRequest{PaymentStatus: "paid"}); err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestPaymentNotFound(t *testing.T) {
	gdb := openTestDB(t)

	_, err := UpdateTeamPayment(gdb, "TM-NOPE-XXXXX", PaymentRequest{PaymentStatus: models.PaymentCompleted})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestPlayerPaymentCompletedApprovesPlayer(t *testing.T) {
	gdb := openTestDB(t)
	p := models.Player{
		PlayerID:           "PL-TEST1-BBBBB",
		PlayerName:         "Riley",
		DateOfBirth:        time.Date(2012, 3, 4, 0, 0, 0, 0, time.UTC),
		RegistrationFee:    200,
		RegistrationStatus: models.RegPending,
		Payment:            models.Payment{PaymentStatus: models.PaymentPending},
	}
	if err := gdb.Create(&p).Error; err != nil {
		t.Fatalf("seed player: %v", err)
	}

	got, err := UpdatePlayerPayment(gdb, "PL-TEST1-BBBBB", PaymentRequest{
		PaymentStatus: models.PaymentCompleted,
		PaymentMethod: "zelle",
	})
	if err != nil {
		t.Fatalf("UpdatePlayerPayment: %v", err)
	}
	if got.RegistrationStatus != models.RegApproved {
		t.Errorf("registrationStatus = %q, want approved", got.RegistrationStatus)
	}
	if got.PaymentMethod != "zelle" {
		t.Errorf("paymentMethod = %q", got.PaymentMethod)
	}
	if got.PaymentDate == nil {
		t.Error("paymentDate not stamped")
	}
}

func TestSponsorPaymentNoStatusSideEffect(t *testing.T) {
	gdb := openTestDB(t)
	s := models.Sponsor{
		SponsorID: "SPR-TEST1-CCCCC",
		Tier:      "gold",
		Amount:    2500,
		Payment:   models.Payment{PaymentStatus: models.PaymentPending},
	}
	if err := gdb.Create(&s).Error; err != nil {
		t.Fatalf("seed sponsor: %v", err)
	}

	got, err := UpdateSponsorPayment(gdb, "SPR-TEST1-CCCCC", PaymentRequest{PaymentStatus: models.PaymentCompleted})
	if err != nil {
		t.Fatalf("UpdateSponsorPayment: %v", err)
	}
	if got.PaymentDate == nil {
		t.Error("paymentDate not stamped")
	}
}
