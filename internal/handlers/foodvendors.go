package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bazaarhq/backoffice/internal/db"
	"github.com/bazaarhq/backoffice/internal/ids"
	"github.com/bazaarhq/backoffice/internal/models"
	"github.com/bazaarhq/backoffice/internal/pricing"
	svc "github.com/bazaarhq/backoffice/internal/services"
	"github.com/bazaarhq/backoffice/internal/validate"
)

// GET /api/food-vendors
func FoodVendorsList(w http.ResponseWriter, r *http.Request) {
	var list []models.FoodVendor
	if err := db.Conn().Order("created_at DESC").Find(&list).Error; err != nil {
		fail(w, "Fetch failed")
		return
	}
	ok(w, list)
}

// GET /api/food-vendors/stats
func FoodVendorsStats(w http.ResponseWriter, r *http.Request) {
	s, err := svc.FoodVendorStatistics(db.Conn())
	if err != nil {
		fail(w, "Stats fetch failed")
		return
	}
	ok(w, s)
}

// POST /api/food-vendors
func FoodVendorCreate(w http.ResponseWriter, r *http.Request) {
	var v models.FoodVendor
	if err := decode(r, &v); err != nil {
		fail(w, "invalid request body")
		return
	}
	if vs := validate.FoodVendor(v); len(vs) > 0 {
		fail(w, validate.Join(vs))
		return
	}

	now := time.Now()
	v.ID = 0
	v.CreatedAt, v.UpdatedAt = time.Time{}, time.Time{}
	v.VendorID = ids.New("FVD")
	v.VendorFee = pricing.FoodVendorFee
	v.PaymentStatus = models.PaymentPending
	v.TransactionID = nil
	v.PaymentDate = nil
	v.IsActive = true
	v.AcceptedTermsDate = &now

	if err := db.Conn().Create(&v).Error; err != nil {
		fail(w, "Create failed")
		return
	}
	ok(w, v)
}

// PUT /api/food-vendors/{id}
func FoodVendorUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body models.FoodVendor
	if err := decode(r, &body); err != nil {
		fail(w, "invalid request body")
		return
	}

	var v models.FoodVendor
	if err := db.Conn().Where("vendor_id = ?", id).First(&v).Error; err != nil {
		failErr(w, err, "Food vendor", "Update failed")
		return
	}

	v.BusinessName = body.BusinessName
	v.ContactPerson = body.ContactPerson
	v.Email = body.Email
	v.Phone = body.Phone
	v.Address = body.Address
	v.Website = body.Website
	v.MenuDescription = body.MenuDescription
	v.SpecialRequirements = body.SpecialRequirements
	v.Comments = body.Comments
	v.Notes = body.Notes
	v.IsActive = body.IsActive

	if vs := validate.FoodVendor(v); len(vs) > 0 {
		fail(w, validate.Join(vs))
		return
	}
	if err := db.Conn().Save(&v).Error; err != nil {
		fail(w, "Update failed")
		return
	}
	ok(w, v)
}

// PATCH /api/food-vendors/{id}/payment
func FoodVendorUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req svc.PaymentRequest
	if err := decode(r, &req); err != nil {
		fail(w, "invalid request body")
		return
	}
	v, err := svc.UpdateFoodVendorPayment(db.Conn(), id, req)
	if err != nil {
		failErr(w, err, "Food vendor", err.Error())
		return
	}
	ok(w, v)
}

// DELETE /api/food-vendors/{id}
func FoodVendorDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := db.Conn().Where("vendor_id = ?", id).Delete(&models.FoodVendor{})
	if res.Error != nil {
		fail(w, "Delete failed")
		return
	}
	if res.RowsAffected == 0 {
		failNotFound(w, "Food vendor")
		return
	}
	okEmpty(w)
}
