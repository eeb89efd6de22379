package handlers

import (
	"net/http"

	"github.com/bazaarhq/backoffice/internal/db"
	svc "github.com/bazaarhq/backoffice/internal/services"
)

// GET /healthz
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// GET /api/dashboard/stats
func DashboardStats(w http.ResponseWriter, r *http.Request) {
	s, err := svc.DashboardStatistics(db.Conn())
	if err != nil {
		fail(w, "Stats error")
		return
	}
	ok(w, s)
}

// GET /api/dashboard/activity
func DashboardActivity(w http.ResponseWriter, r *http.Request) {
	items, err := svc.RecentActivity(db.Conn())
	if err != nil {
		fail(w, "Activity error")
		return
	}
	ok(w, items)
}
