package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bazaarhq/backoffice/internal/config"
	"github.com/bazaarhq/backoffice/internal/handlers"
)

func Router(cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	auth := handlers.NewAuth(cfg)

	r.Get("/healthz", handlers.Health)
	r.Post("/login", auth.Login)
	r.Post("/logout", auth.Logout)

	r.Route("/api", func(api chi.Router) {
		api.Use(auth.RequireAdmin)

		api.Get("/dashboard/stats", handlers.DashboardStats)
		api.Get("/dashboard/activity", handlers.DashboardActivity)

		api.Route("/vendors", func(ar chi.Router) {
			ar.Get("/", handlers.VendorsList)
			ar.Get("/stats", handlers.VendorsStats)
			ar.Post("/", handlers.VendorCreate(cfg))
			ar.Put("/{id}", handlers.VendorUpdate(cfg))
			ar.Patch("/{id}/payment", handlers.VendorUpdatePayment)
			ar.Delete("/{id}", handlers.VendorDelete)
		})

		api.Route("/food-vendors", func(ar chi.Router) {
			ar.Get("/", handlers.FoodVendorsList)
			ar.Get("/stats", handlers.FoodVendorsStats)
			ar.Post("/", handlers.FoodVendorCreate)
			ar.Put("/{id}", handlers.FoodVendorUpdate)
			ar.Patch("/{id}/payment", handlers.FoodVendorUpdatePayment)
			ar.Delete("/{id}", handlers.FoodVendorDelete)
		})

		api.Route("/teams", func(ar chi.Router) {
			ar.Get("/", handlers.TeamsList)
			ar.Get("/stats", handlers.TeamsStats)
			ar.Post("/", handlers.TeamCreate)
			ar.Put("/{id}", handlers.TeamUpdate)
			ar.Patch("/{id}/status", handlers.TeamUpdateStatus)
			ar.Patch("/{id}/payment", handlers.TeamUpdatePayment)
			ar.Delete("/{id}", handlers.TeamDelete)
			ar.Get("/{id}/qr.png", handlers.TeamQR)
		})

		api.Route("/sponsors", func(ar chi.Router) {
			ar.Get("/", handlers.SponsorsList)
			ar.Get("/stats", handlers.SponsorsStats)
			ar.Post("/", handlers.SponsorCreate(cfg))
			ar.Put("/{id}", handlers.SponsorUpdate(cfg))
			ar.Patch("/{id}/payment", handlers.SponsorUpdatePayment)
			ar.Delete("/{id}", handlers.SponsorDelete)
		})

		api.Route("/players", func(ar chi.Router) {
			ar.Get("/", handlers.PlayersList)
			ar.Get("/stats", handlers.PlayersStats)
			ar.Get("/shirts", handlers.PlayersShirtSummary)
			ar.Post("/", handlers.PlayerCreate)
			ar.Put("/{id}", handlers.PlayerUpdate)
			ar.Patch("/{id}/payment", handlers.PlayerUpdatePayment)
			ar.Delete("/{id}", handlers.PlayerDelete)
			ar.Get("/{id}/qr.png", handlers.PlayerQR)
		})

		api.Route("/bounce-house", func(ar chi.Router) {
			ar.Get("/", handlers.BounceHouseList)
			ar.Get("/stats", handlers.BounceHouseStats)
			ar.Post("/", handlers.BounceHouseCreate)
			ar.Put("/{id}", handlers.BounceHouseUpdate)
			ar.Delete("/{id}", handlers.BounceHouseDelete)
			ar.Get("/{id}/qr.png", handlers.BounceHouseQR)
		})

		api.Route("/feedback", func(ar chi.Router) {
			ar.Get("/", handlers.FeedbackList)
			ar.Get("/stats", handlers.FeedbackStats)
			ar.Post("/", handlers.FeedbackCreate(cfg))
			ar.Put("/{id}", handlers.FeedbackUpdate)
			ar.Delete("/{id}", handlers.FeedbackDelete)
		})

		api.Route("/internal-feedback", func(ar chi.Router) {
			ar.Get("/", handlers.InternalFeedbackList)
			ar.Get("/stats", handlers.InternalFeedbackStats)
			ar.Post("/", handlers.InternalFeedbackCreate)
			ar.Put("/{id}", handlers.InternalFeedbackUpdate)
			ar.Delete("/{id}", handlers.InternalFeedbackDelete)
		})
	})

	return r
}
