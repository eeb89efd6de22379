package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bazaarhq/backoffice/internal/config"
	"github.com/bazaarhq/backoffice/internal/db"
	"github.com/bazaarhq/backoffice/internal/ids"
	"github.com/bazaarhq/backoffice/internal/models"
	svc "github.com/bazaarhq/backoffice/internal/services"
	"github.com/bazaarhq/backoffice/internal/validate"
)

// GET /api/sponsors
func SponsorsList(w http.ResponseWriter, r *http.Request) {
	var list []models.Sponsor
	if err := db.Conn().Order("created_at DESC").Find(&list).Error; err != nil {
		fail(w, "Fetch failed")
		return
	}
	ok(w, viewSponsors(list))
}

// GET /api/sponsors/stats
func SponsorsStats(w http.ResponseWriter, r *http.Request) {
	s, err := svc.SponsorStatistics(db.Conn())
	if err != nil {
		fail(w, "Stats fetch failed")
		return
	}
	ok(w, s)
}

// POST /api/sponsors
func SponsorCreate(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s models.Sponsor
		if err := decode(r, &s); err != nil {
			fail(w, "invalid request body")
			return
		}
		s.Tier = strings.ToLower(strings.TrimSpace(s.Tier))
		if vs := validate.Sponsor(s, cfg.SponsorTiers); len(vs) > 0 {
			fail(w, validate.Join(vs))
			return
		}

		s.ID = 0
		s.CreatedAt, s.UpdatedAt = time.Time{}, time.Time{}
		s.SponsorID = ids.New("SPR")
		s.PaymentStatus = models.PaymentPending
		s.TransactionID = nil
		s.PaymentDate = nil
		s.IsActive = true

		if err := db.Conn().Create(&s).Error; err != nil {
			fail(w, "Create failed")
			return
		}
		ok(w, viewSponsor(s))
	}
}

// PUT /api/sponsors/{id}
func SponsorUpdate(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var body models.Sponsor
		if err := decode(r, &body); err != nil {
			fail(w, "invalid request body")
			return
		}
		body.Tier = strings.ToLower(strings.TrimSpace(body.Tier))

		var s models.Sponsor
		if err := db.Conn().Where("sponsor_id = ?", id).First(&s).Error; err != nil {
			failErr(w, err, "Sponsor", "Update failed")
			return
		}

		s.CompanyName = body.CompanyName
		s.ContactPerson = body.ContactPerson
		s.Email = body.Email
		s.Phone = body.Phone
		s.Address = body.Address
		s.Website = body.Website
		s.Logo = body.Logo
		s.Tier = body.Tier
		// Amount moves with tier edits; a tier upgrade would otherwise
		// always fail the new tier's minimum.
		s.Amount = body.Amount
		s.Comments = body.Comments
		s.Notes = body.Notes
		s.IsActive = body.IsActive

		if vs := validate.Sponsor(s, cfg.SponsorTiers); len(vs) > 0 {
			fail(w, validate.Join(vs))
			return
		}
		if err := db.Conn().Save(&s).Error; err != nil {
			fail(w, "Update failed")
			return
		}
		ok(w, viewSponsor(s))
	}
}

// PATCH /api/sponsors/{id}/payment
func SponsorUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req svc.PaymentRequest
	if err := decode(r, &req); err != nil {
		fail(w, "invalid request body")
		return
	}
	s, err := svc.UpdateSponsorPayment(db.Conn(), id, req)
	if err != nil {
		failErr(w, err, "Sponsor", err.Error())
		return
	}
	ok(w, viewSponsor(*s))
}

// DELETE /api/sponsors/{id}
func SponsorDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := db.Conn().Where("sponsor_id = ?", id).Delete(&models.Sponsor{})
	if res.Error != nil {
		fail(w, "Delete failed")
		return
	}
	if res.RowsAffected == 0 {
		failNotFound(w, "Sponsor")
		return
	}
	okEmpty(w)
}
