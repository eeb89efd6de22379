package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/bazaarhq/backoffice/internal/db"
	"github.com/bazaarhq/backoffice/internal/ids"
	"github.com/bazaarhq/backoffice/internal/models"
	"github.com/bazaarhq/backoffice/internal/pricing"
	svc "github.com/bazaarhq/backoffice/internal/services"
	"github.com/bazaarhq/backoffice/internal/validate"
)

// GET /api/teams
func TeamsList(w http.ResponseWriter, r *http.Request) {
	var list []models.Team
	if err := db.Conn().Preload("Players").Order("created_at DESC").Find(&list).Error; err != nil {
		fail(w, "Fetch failed")
		return
	}
	ok(w, viewTeams(list))
}

// GET /api/teams/stats
func TeamsStats(w http.ResponseWriter, r *http.Request) {
	s, err := svc.TeamStatistics(db.Conn())
	if err != nil {
		fail(w, "Stats fetch failed")
		return
	}
	ok(w, s)
}

// POST /api/teams
func TeamCreate(w http.ResponseWriter, r *http.Request) {
	var t models.Team
	if err := decode(r, &t); err != nil {
		fail(w, "invalid request body")
		return
	}
	if vs := validate.Team(t); len(vs) > 0 {
		fail(w, validate.Join(vs))
		return
	}

	// Server-assigned fields; whatever the client sent for them is dropped.
	t.ID = 0
	t.CreatedAt, t.UpdatedAt = time.Time{}, time.Time{}
	t.TeamID = ids.New("TM")
	t.RegistrationFee = pricing.TeamFee(t.Category)
	t.RegistrationStatus = models.RegPending
	t.PaymentStatus = models.PaymentPending
	t.TransactionID = nil
	t.PaymentDate = nil
	t.DocumentsVerified = false
	t.VerifiedBy = nil
	t.VerifiedDate = nil
	t.IsActive = true
	for i := range t.Players {
		t.Players[i].ID = 0
		t.Players[i].TeamRef = 0
	}

	if err := db.Conn().Create(&t).Error; err != nil {
		fail(w, "Create failed")
		return
	}
	ok(w, viewTeam(t))
}

// PUT /api/teams/{id}
func TeamUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body models.Team
	if err := decode(r, &body); err != nil {
		fail(w, "invalid request body")
		return
	}

	var t models.Team
	if err := db.Conn().Where("team_id = ?", id).First(&t).Error; err != nil {
		failErr(w, err, "Team", "Update failed")
		return
	}

	t.TeamName = body.TeamName
	t.Organization = body.Organization
	t.City = body.City
	t.Category = body.Category // fee stays locked to the creation-time table
	t.CoachName = body.CoachName
	t.CoachEmail = body.CoachEmail
	t.CoachPhone = body.CoachPhone
	t.EmergencyContact = body.EmergencyContact
	t.SpecialRequirements = body.SpecialRequirements
	t.Comments = body.Comments
	t.Notes = body.Notes
	t.IsActive = body.IsActive
	t.GroupAssignment = body.GroupAssignment
	t.SeedNumber = body.SeedNumber

	players := make([]models.TeamPlayer, len(body.Players))
	for i, p := range body.Players {
		players[i] = models.TeamPlayer{
			PlayerName:          p.PlayerName,
			DateOfBirth:         p.DateOfBirth,
			IDPhotoURL:          p.IDPhotoURL,
			IDPhotoOriginalName: p.IDPhotoOriginalName,
		}
	}
	candidate := t
	candidate.Players = players
	if vs := validate.Team(candidate); len(vs) > 0 {
		fail(w, validate.Join(vs))
		return
	}

	err := db.Conn().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_ref = ?", t.ID).Delete(&models.TeamPlayer{}).Error; err != nil {
			return err
		}
		t.Players = players
		return tx.Save(&t).Error
	})
	if err != nil {
		fail(w, "Update failed")
		return
	}
	ok(w, viewTeam(t))
}

// PATCH /api/teams/{id}/status
func TeamUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body struct {
		RegistrationStatus string  `json:"registrationStatus"`
		Notes              string  `json:"notes"`
		VerifiedBy         *string `json:"verifiedBy"`
	}
	if err := decode(r, &body); err != nil {
		fail(w, "invalid request body")
		return
	}
	switch body.RegistrationStatus {
	case models.RegPending, models.RegApproved, models.RegRejected, models.RegWaitlisted:
	default:
		fail(w, "invalid registration status")
		return
	}

	var t models.Team
	if err := db.Conn().Preload("Players").Where("team_id = ?", id).First(&t).Error; err != nil {
		failErr(w, err, "Team", "Status update failed")
		return
	}
	t.RegistrationStatus = body.RegistrationStatus
	t.Notes = body.Notes
	// Approval is the document check-off, so it stamps the verification
	// trail in the same write.
	if body.RegistrationStatus == models.RegApproved {
		now := time.Now()
		t.DocumentsVerified = true
		t.VerifiedBy = body.VerifiedBy
		t.VerifiedDate = &now
	}
	if err := db.Conn().Save(&t).Error; err != nil {
		fail(w, "Status update failed")
		return
	}
	ok(w, viewTeam(t))
}

// PATCH /api/teams/{id}/payment
func TeamUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req svc.PaymentRequest
	if err := decode(r, &req); err != nil {
		fail(w, "invalid request body")
		return
	}
	t, err := svc.UpdateTeamPayment(db.Conn(), id, req)
	if err != nil {
		failErr(w, err, "Team", err.Error())
		return
	}
	ok(w, viewTeam(*t))
}

// DELETE /api/teams/{id}
func TeamDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var t models.Team
	if err := db.Conn().Where("team_id = ?", id).First(&t).Error; err != nil {
		failErr(w, err, "Team", "Delete failed")
		return
	}
	err := db.Conn().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_ref = ?", t.ID).Delete(&models.TeamPlayer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&t).Error
	})
	if err != nil {
		fail(w, "Delete failed")
		return
	}
	okEmpty(w)
}

// GET /api/teams/{id}/qr.png
func TeamQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var t models.Team
	if err := db.Conn().Select("id").Where("team_id = ?", id).First(&t).Error; err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	serveQR(w, id)
}
