package domain

import "time"

// ReportCategory describes a kind of incident that can be reported.
type ReportCategory struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Urgent bool   `json:"urgent"`
}

// ReportCategories is the fixed list offered on the reporting form.
var ReportCategories = []ReportCategory{
	{Value: "harassment", Label: "Harassment/Ragging", Urgent: true},
	{Value: "safety", Label: "Safety Concern", Urgent: true},
	{Value: "maintenance", Label: "Infrastructure Issue"},
	{Value: "mental_health", Label: "Mental Health Support", Urgent: true},
	{Value: "academic", Label: "Academic Issue"},
	{Value: "other", Label: "Other"},
}

// FindReportCategory looks a category up by value.
func FindReportCategory(value string) (ReportCategory, bool) {
	for _, c := range ReportCategories {
		if c.Value == value {
			return c, true
		}
	}
	return ReportCategory{}, false
}

// EmergencyContact is a number shown alongside the reporting form.
type EmergencyContact struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Number      string `json:"number"`
}

var EmergencyContacts = []EmergencyContact{
	{Title: "Emergency", Description: "Immediate danger or crisis", Number: "100"},
	{Title: "Campus Security", Description: "Safety concerns on campus", Number: "2500"},
	{Title: "Crisis Helpline", Description: "Mental health support", Number: "1800-123-4567"},
}

// Report is an incident submitted through the reporting form.
// Reporter is only populated for non-anonymous reports. ReferenceID is shown
// to the reporter and is not unique; ID is.
type Report struct {
	ID          string    `json:"id" bson:"_id"`
	ReferenceID string    `json:"referenceId" bson:"reference_id"`
	Category    string    `json:"category" bson:"category"`
	Description string    `json:"description" bson:"description"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	Anonymous   bool      `json:"anonymous" bson:"anonymous"`
	Reporter    string    `json:"reporter,omitempty" bson:"reporter,omitempty"`
	Urgent      bool      `json:"urgent" bson:"urgent"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submitted_at"`
}
