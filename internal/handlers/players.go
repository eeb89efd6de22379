package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bazaarhq/backoffice/internal/db"
	"github.com/bazaarhq/backoffice/internal/ids"
	"github.com/bazaarhq/backoffice/internal/models"
	"github.com/bazaarhq/backoffice/internal/pricing"
	svc "github.com/bazaarhq/backoffice/internal/services"
	"github.com/bazaarhq/backoffice/internal/validate"
)

// GET /api/players
func PlayersList(w http.ResponseWriter, r *http.Request) {
	var list []models.Player
	if err := db.Conn().Order("created_at DESC").Find(&list).Error; err != nil {
		fail(w, "Fetch failed")
		return
	}
	ok(w, viewPlayers(list))
}

// GET /api/players/stats
func PlayersStats(w http.ResponseWriter, r *http.Request) {
	s, err := svc.PlayerStatistics(db.Conn())
	if err != nil {
		fail(w, "Stats fetch failed")
		return
	}
	ok(w, s)
}

// GET /api/players/shirts
func PlayersShirtSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := svc.ShirtSummary(db.Conn())
	if err != nil {
		fail(w, "Failed to get shirt summary")
		return
	}
	ok(w, summary)
}

// POST /api/players
func PlayerCreate(w http.ResponseWriter, r *http.Request) {
	var p models.Player
	if err := decode(r, &p); err != nil {
		fail(w, "invalid request body")
		return
	}
	p.ShirtSize = strings.ToUpper(strings.TrimSpace(p.ShirtSize))
	if vs := validate.Player(p); len(vs) > 0 {
		fail(w, validate.Join(vs))
		return
	}

	now := time.Now()
	p.ID = 0
	p.CreatedAt, p.UpdatedAt = time.Time{}, time.Time{}
	p.PlayerID = ids.New("PL")
	p.RegistrationFee = pricing.PlayerPracticeFee
	p.RegistrationStatus = models.RegPending
	p.PaymentStatus = models.PaymentPending
	p.TransactionID = nil
	p.PaymentDate = nil
	p.IsActive = true
	p.AgeAtRegistration = svc.ComputeAge(p.DateOfBirth, now)
	if p.WaiverAccepted {
		p.WaiverAcceptedDate = &now
	} else {
		p.WaiverAcceptedDate = nil
	}

	if err := db.Conn().Create(&p).Error; err != nil {
		fail(w, "Create failed")
		return
	}
	ok(w, viewPlayer(p))
}

// PUT /api/players/{id}
func PlayerUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body models.Player
	if err := decode(r, &body); err != nil {
		fail(w, "invalid request body")
		return
	}
	body.ShirtSize = strings.ToUpper(strings.TrimSpace(body.ShirtSize))

	var p models.Player
	if err := db.Conn().Where("player_id = ?", id).First(&p).Error; err != nil {
		failErr(w, err, "Player", "Update failed")
		return
	}

	dobChanged := !body.DateOfBirth.Equal(p.DateOfBirth)

	p.PlayerName = body.PlayerName
	p.DateOfBirth = body.DateOfBirth
	p.ShirtSize = body.ShirtSize
	p.CurrentGrade = body.CurrentGrade
	p.CurrentSchool = body.CurrentSchool
	p.ChosenTeam = body.ChosenTeam
	p.ParentInfo = body.ParentInfo
	p.Comments = body.Comments
	p.Notes = body.Notes
	p.IsActive = body.IsActive
	if body.WaiverAccepted && !p.WaiverAccepted {
		now := time.Now()
		p.WaiverAcceptedDate = &now
	}
	if !body.WaiverAccepted {
		p.WaiverAcceptedDate = nil
	}
	p.WaiverAccepted = body.WaiverAccepted

	if vs := validate.Player(p); len(vs) > 0 {
		fail(w, validate.Join(vs))
		return
	}

	// ageAtRegistration tracks the last write of dateOfBirth, not reads.
	if dobChanged {
		p.AgeAtRegistration = svc.ComputeAge(p.DateOfBirth, time.Now())
	}

	if err := db.Conn().Save(&p).Error; err != nil {
		fail(w, "Update failed")
		return
	}
	ok(w, viewPlayer(p))
}

// PATCH /api/players/{id}/payment
func PlayerUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req svc.PaymentRequest
	if err := decode(r, &req); err != nil {
		fail(w, "invalid request body")
		return
	}
	p, err := svc.UpdatePlayerPayment(db.Conn(), id, req)
	if err != nil {
		failErr(w, err, "Player", err.Error())
		return
	}
	ok(w, viewPlayer(*p))
}

// DELETE /api/players/{id}
func PlayerDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := db.Conn().Where("player_id = ?", id).Delete(&models.Player{})
	if res.Error != nil {
		fail(w, "Delete failed")
		return
	}
	if res.RowsAffected == 0 {
		failNotFound(w, "Player")
		return
	}
	okEmpty(w)
}

// GET /api/players/{id}/qr.png
func PlayerQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var p models.Player
	if err := db.Conn().Select("id").Where("player_id = ?", id).First(&p).Error; err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	serveQR(w, id)
}
