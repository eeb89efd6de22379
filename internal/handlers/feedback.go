package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bazaarhq/backoffice/internal/config"
	"github.com/bazaarhq/backoffice/internal/db"
	"github.com/bazaarhq/backoffice/internal/ids"
	"github.com/bazaarhq/backoffice/internal/models"
	svc "github.com/bazaarhq/backoffice/internal/services"
	"github.com/bazaarhq/backoffice/internal/validate"
)

// GET /api/feedback
func FeedbackList(w http.ResponseWriter, r *http.Request) {
	var list []models.Feedback
	if err := db.Conn().Order("created_at DESC").Find(&list).Error; err != nil {
		fail(w, "Fetch failed")
		return
	}
	ok(w, viewFeedbacks(list))
}

// GET /api/feedback/stats
func FeedbackStats(w http.ResponseWriter, r *http.Request) {
	s, err := svc.FeedbackStatistics(db.Conn())
	if err != nil {
		fail(w, "Stats fetch failed")
		return
	}
	ok(w, s)
}

// POST /api/feedback
func FeedbackCreate(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f models.Feedback
		if err := decode(r, &f); err != nil {
			fail(w, "invalid request body")
			return
		}
		if vs := validate.Feedback(f, cfg.RatingsMandatory); len(vs) > 0 {
			fail(w, validate.Join(vs))
			return
		}

		f.ID = 0
		f.CreatedAt, f.UpdatedAt = time.Time{}, time.Time{}
		f.FeedbackID = ids.New("FB")
		f.IsActive = true

		if err := db.Conn().Create(&f).Error; err != nil {
			fail(w, "Create failed")
			return
		}
		ok(w, viewFeedback(f))
	}
}

// PUT /api/feedback/{id}
// Survey answers are immutable once submitted; only admin fields move.
func FeedbackUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body struct {
		Notes    string `json:"notes"`
		IsActive *bool  `json:"isActive"`
	}
	if err := decode(r, &body); err != nil {
		fail(w, "invalid request body")
		return
	}

	var f models.Feedback
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
	ok(w, viewFeedback(f))
}

// DELETE /api/feedback/{id}
func FeedbackDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := db.Conn().Where("feedback_id = ?", id).Delete(&models.Feedback{})
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
