package handlers

import (
	"strings"

	"github.com/bazaarhq/backoffice/internal/models"
	"github.com/bazaarhq/backoffice/internal/services"
)

// View wrappers add the display fields the tables render (category
// labels, counts, average ratings). They are computed here at
// serialization time; the stored records stay plain values.

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type vendorView struct {
	models.Vendor
	BoothCount int `json:"boothCount"`
}

func viewVendor(v models.Vendor) vendorView {
	return vendorView{Vendor: v, BoothCount: len(v.Booths)}
}

func viewVendors(list []models.Vendor) []vendorView {
	out := make([]vendorView, len(list))
	for i, v := range list {
		out[i] = viewVendor(v)
	}
	return out
}

type teamView struct {
	models.Team
	CategoryDisplayName string `json:"categoryDisplayName"`
	PlayerCount         int    `json:"playerCount"`
	StatusDisplay       string `json:"statusDisplay"`
}

func viewTeam(t models.Team) teamView {
	display := models.TeamCategoryDisplayNames[t.Category]
	if display == "" {
		display = t.Category
	}
	status := titleCase(t.RegistrationStatus)
	if t.RegistrationStatus == models.RegApproved {
		switch t.PaymentStatus {
		case models.PaymentCompleted:
			status = "Ready to Play"
		case models.PaymentPending:
			status = "Payment Pending"
		}
	}
	return teamView{
		Team:                t,
		CategoryDisplayName: display,
		PlayerCount:         len(t.Players),
		StatusDisplay:       status,
	}
}

func viewTeams(list []models.Team) []teamView {
	out := make([]teamView, len(list))
	for i, t := range list {
		out[i] = viewTeam(t)
	}
	return out
}

type sponsorView struct {
	models.Sponsor
	TierDisplayName string `json:"tierDisplayName"`
}

func viewSponsor(s models.Sponsor) sponsorView {
	return sponsorView{Sponsor: s, TierDisplayName: titleCase(s.Tier)}
}

func viewSponsors(list []models.Sponsor) []sponsorView {
	out := make([]sponsorView, len(list))
	for i, s := range list {
		out[i] = viewSponsor(s)
	}
	return out
}

type playerView struct {
	models.Player
	ShirtSizeDisplayName string `json:"shirtSizeDisplayName"`
	StatusDisplay        string `json:"statusDisplay"`
}

func viewPlayer(p models.Player) playerView {
	display := models.ShirtSizeDisplayNames[p.ShirtSize]
	if display == "" {
		display = p.ShirtSize
	}
	status := titleCase(p.RegistrationStatus)
	if p.RegistrationStatus == models.RegApproved {
		switch p.PaymentStatus {
		case models.PaymentCompleted:
			status = "Ready for Practice"
		case models.PaymentPending:
			status = "Payment Pending"
		}
	}
	return playerView{Player: p, ShirtSizeDisplayName: display, StatusDisplay: status}
}

func viewPlayers(list []models.Player) []playerView {
	out := make([]playerView, len(list))
	for i, p := range list {
		out[i] = viewPlayer(p)
	}
	return out
}

type bounceView struct {
	models.BounceHouseRegistration
	ChildCount int `json:"childCount"`
}

func viewBounce(b models.BounceHouseRegistration) bounceView {
	return bounceView{BounceHouseRegistration: b, ChildCount: len(b.Children)}
}

func viewBounces(list []models.BounceHouseRegistration) []bounceView {
	out := make([]bounceView, len(list))
	for i, b := range list {
		out[i] = viewBounce(b)
	}
	return out
}

type feedbackView struct {
	models.Feedback
	AverageRating string `json:"averageRating"`
}

func viewFeedback(f models.Feedback) feedbackView {
	return feedbackView{Feedback: f, AverageRating: services.AverageRating(f.Ratings.Present())}
}

func viewFeedbacks(list []models.Feedback) []feedbackView {
	out := make([]feedbackView, len(list))
	for i, f := range list {
		out[i] = viewFeedback(f)
	}
	return out
}

type internalFeedbackView struct {
	models.InternalFeedback
	AverageRating string `json:"averageRating"`
}

func viewInternalFeedback(f models.InternalFeedback) internalFeedbackView {
	return internalFeedbackView{InternalFeedback: f, AverageRating: services.AverageRating(f.Ratings.Present())}
}

func viewInternalFeedbacks(list []models.InternalFeedback) []internalFeedbackView {
	out := make([]internalFeedbackView, len(list))
	for i, f := range list {
		out[i] = viewInternalFeedback(f)
	}
	return out
}
