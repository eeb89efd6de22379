package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/bazaarhq/backoffice/internal/config"
	"github.com/bazaarhq/backoffice/internal/db"
	"github.com/bazaarhq/backoffice/internal/ids"
	"github.com/bazaarhq/backoffice/internal/models"
	"github.com/bazaarhq/backoffice/internal/pricing"
	svc "github.com/bazaarhq/backoffice/internal/services"
	"github.com/bazaarhq/backoffice/internal/validate"
)

// GET /api/vendors
func VendorsList(w http.ResponseWriter, r *http.Request) {
	var list []models.Vendor
	if err := db.Conn().Preload("Booths").Order("created_at DESC").Find(&list).Error; err != nil {
		fail(w, "Fetch failed")
		return
	}
	ok(w, viewVendors(list))
}

// GET /api/vendors/stats
func VendorsStats(w http.ResponseWriter, r *http.Request) {
	s, err := svc.VendorStatistics(db.Conn())
	if err != nil {
		fail(w, "Stats fetch failed")
		return
	}
	ok(w, s)
}

// priceVendor resolves booth pricing from the static tables for the
// configured variant and writes it onto the record. Client-sent prices
// never survive this.
func priceVendor(v *models.Vendor, variant string) {
	v.OriginalPrice = nil
	v.DiscountApplied = nil

	if variant == config.VendorPricingLocation {
		v.Booths = nil
		v.TotalBoothPrice = pricing.LocationPrice(v.BoothLocation)
		return
	}

	v.BoothLocation = ""
	counts := map[string]int{}
	for i := range v.Booths {
		v.Booths[i].ID = 0
		v.Booths[i].OwnerID = 0
		v.Booths[i].Price = pricing.BoothPrice(v.Booths[i].BoothType, 1)
		counts[v.Booths[i].BoothType]++
	}

	var total, undiscounted float64
	for typ, n := range counts {
		total += pricing.BoothPrice(typ, n)
		undiscounted += float64(n) * pricing.BoothPrice(typ, 1)
	}
	v.TotalBoothPrice = total
	if undiscounted > total {
		discount := undiscounted - total
		v.OriginalPrice = &undiscounted
		v.DiscountApplied = &discount
	}
}

// POST /api/vendors
func VendorCreate(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v models.Vendor
		if err := decode(r, &v); err != nil {
			fail(w, "invalid request body")
			return
		}
		if vs := validate.Vendor(v, cfg.VendorPricing); len(vs) > 0 {
			fail(w, validate.Join(vs))
			return
		}

		now := time.Now()
		v.ID = 0
		v.CreatedAt, v.UpdatedAt = time.Time{}, time.Time{}
		v.VendorID = ids.New("VND")
		v.PaymentStatus = models.PaymentPending
		v.TransactionID = nil
		v.PaymentDate = nil
		v.IsActive = true
		v.AcceptedTermsDate = &now
		priceVendor(&v, cfg.VendorPricing)

		if err := db.Conn().Create(&v).Error; err != nil {
			fail(w, "Create failed")
			return
		}
		ok(w, viewVendor(v))
	}
}

// PUT /api/vendors/{id}
func VendorUpdate(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var body models.Vendor
		if err := decode(r, &body); err != nil {
			fail(w, "invalid request body")
			return
		}

		var v models.Vendor
		if err := db.Conn().Preload("Booths").Where("vendor_id = ?", id).First(&v).Error; err != nil {
			failErr(w, err, "Vendor", "Update failed")
			return
		}

		// Contact and descriptive fields only; booth selection and the
		// locked-in price are not editable after creation.
		v.BusinessName = body.BusinessName
		v.ContactPerson = body.ContactPerson
		v.Email = body.Email
		v.Phone = body.Phone
		v.Address = body.Address
		v.Website = body.Website
		v.VendorType = body.VendorType
		v.BusinessDescription = body.BusinessDescription
		v.SpecialRequirements = body.SpecialRequirements
		v.Comments = body.Comments
		v.Notes = body.Notes
		v.IsActive = body.IsActive

		if vs := validate.Vendor(v, cfg.VendorPricing); len(vs) > 0 {
			fail(w, validate.Join(vs))
			return
		}
		if err := db.Conn().Save(&v).Error; err != nil {
			fail(w, "Update failed")
			return
		}
		ok(w, viewVendor(v))
	}
}

// PATCH /api/vendors/{id}/payment
func VendorUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req svc.PaymentRequest
	if err := decode(r, &req); err != nil {
		fail(w, "invalid request body")
		return
	}
	v, err := svc.UpdateVendorPayment(db.Conn(), id, req)
	if err != nil {
		failErr(w, err, "Vendor", err.Error())
		return
	}
	ok(w, viewVendor(*v))
}

// DELETE /api/vendors/{id}
func VendorDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var v models.Vendor
	if err := db.Conn().Where("vendor_id = ?", id).First(&v).Error; err != nil {
		failErr(w, err, "Vendor", "Delete failed")
		return
	}
	err := db.Conn().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", v.ID).Delete(&models.VendorBooth{}).Error; err != nil {
			return err
		}
		return tx.Delete(&v).Error
	})
	if err != nil {
		fail(w, "Delete failed")
		return
	}
	okEmpty(w)
}
