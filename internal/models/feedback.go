package models

import "time"

// Feedback is the public post-event survey. Rating fields are pointers:
// nil means the respondent skipped the question, which matters for the
// sparse averaging rules in services/stats.
type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FeedbackID string `gorm:"uniqueIndex;not null" json:"feedbackId"`

	Name  string `json:"name"`
	Email string `json:"email"`

	Ratings FeedbackRatings `gorm:"embedded;embeddedPrefix:rating_" json:"ratings"`

	EnjoyedMost  string `json:"enjoyedMost"`
	Improvements string `json:"improvements"`
	Issues       string `json:"issues"`
	Suggestions  string `json:"suggestions"`

	Notes    string `json:"notes"`
	IsActive bool   `json:"isActive"`
}

type FeedbackRatings struct {
	Organization         *int `json:"organization,omitempty"`
	Communication        *int `json:"communication,omitempty"`
	Volunteers           *int `json:"volunteers,omitempty"`
	Cleanliness          *int `json:"cleanliness,omitempty"`
	FoodQuality          *int `json:"foodQuality,omitempty"`
	Pricing              *int `json:"pricing,omitempty"`
	Checkin              *int `json:"checkin,omitempty"`
	TournamentManagement *int `json:"tournamentManagement,omitempty"`
	QuranManagement      *int `json:"quranManagement,omitempty"`
	Schedule             *int `json:"schedule,omitempty"`
	Seating              *int `json:"seating,omitempty"`
	Overall              *int `json:"overall,omitempty"`
}

// FeedbackRatingKeys is the stats iteration order.
var FeedbackRatingKeys = []string{
	"organization", "communication", "volunteers", "cleanliness",
	"foodQuality", "pricing", "checkin", "tournamentManagement",
	"quranManagement", "schedule", "seating", "overall",
}

// ByKey maps rating names to values for generic iteration in validation
// and stats. Keys follow the JSON field names.
func (r FeedbackRatings) ByKey() map[string]*int {
	return map[string]*int{
		"organization":         r.Organization,
		"communication":        r.Communication,
		"volunteers":           r.Volunteers,
		"cleanliness":          r.Cleanliness,
		"foodQuality":          r.FoodQuality,
		"pricing":              r.Pricing,
		"checkin":              r.Checkin,
		"tournamentManagement": r.TournamentManagement,
		"quranManagement":      r.QuranManagement,
		"schedule":             r.Schedule,
		"seating":              r.Seating,
		"overall":              r.Overall,
	}
}

// Present returns the rating values that were actually supplied.
func (r FeedbackRatings) Present() []int {
	var out []int
	for _, k := range FeedbackRatingKeys {
		if v := r.ByKey()[k]; v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Volunteer/organizer roles on the internal survey.
var InternalRoles = []string{
	"tournament", "bazaar", "quran", "registration", "food",
	"volunteer", "setup", "communications", "website", "other",
}

// InternalFeedback is the organizers' own retrospective survey.
type InternalFeedback struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FeedbackID string `gorm:"uniqueIndex;not null" json:"feedbackId"`

	Name  string `json:"name"`
	Email string `json:"email"`

	Roles     []string `gorm:"serializer:json" json:"roles"`
	OtherRole string   `json:"otherRole"`

	Ratings InternalRatings `gorm:"embedded;embeddedPrefix:rating_" json:"ratings"`

	WentWell      string `json:"wentWell"`
	WentPoorly    string `json:"wentPoorly"`
	Improvements  string `json:"improvements"`
	OtherComments string `json:"otherComments"`

	// nil = unanswered.
	VolunteerAgain *bool `json:"volunteerAgain"`
	HelpPlan       *bool `json:"helpPlan"`

	Notes    string `json:"notes"`
	IsActive bool   `json:"isActive"`
}

type InternalRatings struct {
	Responsibilities *int `json:"responsibilities,omitempty"`
	Communication    *int `json:"communication,omitempty"`
	Execution        *int `json:"execution,omitempty"`
	ProblemHandling  *int `json:"problemHandling,omitempty"`
	Resources        *int `json:"resources,omitempty"`
	Website          *int `json:"website,omitempty"`
	Coordination     *int `json:"coordination,omitempty"`
	Overall          *int `json:"overall,omitempty"`
}

var InternalRatingKeys = []string{
	"responsibilities", "communication", "execution", "problemHandling",
	"resources", "website", "coordination", "overall",
}

func (r InternalRatings) ByKey() map[string]*int {
	return map[string]*int{
		"responsibilities": r.Responsibilities,
		"communication":    r.Communication,
		"execution":        r.Execution,
		"problemHandling":  r.ProblemHandling,
		"resources":        r.Resources,
		"website":          r.Website,
		"coordination":     r.Coordination,
		"overall":          r.Overall,
	}
}

func (r InternalRatings) Present() []int {
	var out []int
	for _, k := range InternalRatingKeys {
		if v := r.ByKey()[k]; v != nil {
			out = append(out, *v)
		}
	}
	return out
}
