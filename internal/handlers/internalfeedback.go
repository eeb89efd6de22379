package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bazaarhq/backoffice/internal/db"
	"github.com/bazaarhq/backoffice/internal/ids"
	"github.com/bazaarhq/backoffice/internal/models"
	svc "github.com/bazaarhq/backoffice/internal/services"
	"github.com/bazaarhq/backoffice/internal/validate"
)

// GET /api/internal-feedback
func InternalFeedbackList(w http.ResponseWriter, r *http.Request) {
	var list []models.InternalFeedback
	if err := db.Conn().Order("created_at DESC").Find(&list).Error; err != nil {
		fail(w, "Fetch failed")
		return
	}
	ok(w, viewInternalFeedbacks(list))
}

// GET /api/internal-feedback/stats
func InternalFeedbackStats(w http.ResponseWriter, r *http.Request) {
	s, err := svc.InternalFeedbackStatistics(db.Conn())
	if err != nil {
		fail(w, "Stats fetch failed")
		return
	}
	ok(w, s)
}

// POST /api/internal-feedback
func InternalFeedbackCreate(w http.ResponseWriter, r *http.Request) {
	var f models.InternalFeedback
	if err := decode(r, &f); err != nil {
		fail(w, "invalid request body")
		return
	}
	if vs := validate.InternalFeedback(f); len(vs) > 0 {
		fail(w, validate.Join(vs))
		return
	}

	f.ID = 0
	f.CreatedAt, f.UpdatedAt = time.Time{}, time.Time{}
	f.FeedbackID = ids.New("IFB")
	f.IsActive = true

	if err := db.Conn().Create(&f).Error; err != nil {
		fail(w, "Create failed")
		return
	}
	ok(w, viewInternalFeedback(f))
}

// PUT /api/internal-feedback/{id}
func InternalFeedbackUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body struct {
		Notes    string `json:"notes"`
		IsActive *bool  `json:"isActive"`
	}
	if err := decode(r, &body); err != nil {
		fail(w, "invalid request body")
		return
	}

	var f models.InternalFeedback
	if err := db.Conn().Where("feedback_id = ?", id).First(&f).Error; err != nil {
		failErr(w, err, "Feedback", "Update failed")
		return
	}
	f.Notes = body.Notes
	f.IsActive = body.IsActive == nil || *body.IsActive
	if err := db.Conn().Save(&f).Error; err != nil {
		fail(w, "Update failed")
		return
	}
	ok(w, viewInternalFeedback(f))
}

// DELETE /api/internal-feedback/{id}
func InternalFeedbackDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := db.Conn().Where("feedback_id = ?", id).Delete(&models.InternalFeedback{})
	if res.Error != nil {
		fail(w, "Delete failed")
		return
	}
	if res.RowsAffected == 0 {
		failNotFound(w, "Feedback")
		return
	}
	okEmpty(w)
}
