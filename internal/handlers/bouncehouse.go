package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/bazaarhq/backoffice/internal/db"
	"github.com/bazaarhq/backoffice/internal/ids"
	"github.com/bazaarhq/backoffice/internal/models"
	svc "github.com/bazaarhq/backoffice/internal/services"
	"github.com/bazaarhq/backoffice/internal/validate"
)

// GET /api/bounce-house
func BounceHouseList(w http.ResponseWriter, r *http.Request) {
	var list []models.BounceHouseRegistration
	if err := db.Conn().Preload("Children").Order("created_at DESC").Find(&list).Error; err != nil {
		fail(w, "Fetch failed")
		return
	}
	ok(w, viewBounces(list))
}

// GET /api/bounce-house/stats
func BounceHouseStats(w http.ResponseWriter, r *http.Request) {
	s, err := svc.BounceHouseStatistics(db.Conn())
	if err != nil {
		fail(w, "Stats fetch failed")
		return
	}
	ok(w, s)
}

// POST /api/bounce-house
func BounceHouseCreate(w http.ResponseWriter, r *http.Request) {
	var b models.BounceHouseRegistration
	if err := decode(r, &b); err != nil {
		fail(w, "invalid request body")
		return
	}
	if vs := validate.BounceHouse(b); len(vs) > 0 {
		fail(w, validate.Join(vs))
		return
	}

	now := time.Now()
	b.ID = 0
	b.CreatedAt, b.UpdatedAt = time.Time{}, time.Time{}
	b.RegistrationID = ids.New("BH")
	b.IsActive = true
	b.AcceptedTermsDate = &now
	for i := range b.Children {
		b.Children[i].ID = 0
		b.Children[i].RegistrationRef = 0
	}

	if err := db.Conn().Create(&b).Error; err != nil {
		fail(w, "Create failed")
		return
	}
	ok(w, viewBounce(b))
}

// PUT /api/bounce-house/{id}
// Waivers are signed documents; only the admin fields are editable.
func BounceHouseUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body struct {
		Notes    string `json:"notes"`
		IsActive *bool  `json:"isActive"`
	}
	if err := decode(r, &body); err != nil {
		fail(w, "invalid request body")
		return
	}

	var b models.BounceHouseRegistration
	if err := db.Conn().Preload("Children").Where("registration_id = ?", id).First(&b).Error; err != nil {
		failErr(w, err, "Registration", "Update failed")
		return
	}
	b.Notes = body.Notes
	b.IsActive = body.IsActive == nil || *body.IsActive
	if err := db.Conn().Save(&b).Error; err != nil {
		fail(w, "Update failed")
		return
	}
	ok(w, viewBounce(b))
}

// DELETE /api/bounce-house/{id}
func BounceHouseDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var b models.BounceHouseRegistration
	if err := db.Conn().Where("registration_id = ?", id).First(&b).Error; err != nil {
		failErr(w, err, "Registration", "Delete failed")
		return
	}
	err := db.Conn().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("registration_ref = ?", b.ID).Delete(&models.BounceChild{}).Error; err != nil {
			return err
		}
		return tx.Delete(&b).Error
	})
	if err != nil {
		fail(w, "Delete failed")
		return
	}
	okEmpty(w)
}

// GET /api/bounce-house/{id}/qr.png
func BounceHouseQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var b models.BounceHouseRegistration
	if err := db.Conn().Select("id").Where("registration_id = ?", id).First(&b).Error; err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	serveQR(w, id)
}
