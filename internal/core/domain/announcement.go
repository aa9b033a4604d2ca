package domain

import (
	"strings"
	"time"
)

// Priority ranks an announcement.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// FilterAll disables category/priority/community filtering.
const FilterAll = "all"

// Announcement is a campus notice. Immutable once published.
type Announcement struct {
	ID             int       `json:"id" bson:"_id"`
	Title          string    `json:"title" bson:"title"`
	Content        string    `json:"content" bson:"content"`
	Priority       Priority  `json:"priority" bson:"priority"`
	Timestamp      string    `json:"timestamp" bson:"timestamp"`
	Department     string    `json:"department" bson:"department"`
	Category       string    `json:"category,omitempty" bson:"category,omitempty"`
	Location       string    `json:"location,omitempty" bson:"location,omitempty"`
	Deadline       string    `json:"deadline,omitempty" bson:"deadline,omitempty"`
	TargetBranch   string    `json:"targetBranch,omitempty" bson:"target_branch,omitempty"`
	TargetSemester string    `json:"targetSemester,omitempty" bson:"target_semester,omitempty"`
	PublishedAt    time.Time `json:"publishedAt" bson:"published_at"`
}

// FilterAnnouncements keeps announcements whose title, content or department
// contains term (case-insensitive) and whose priority or category equals filter.
// An empty term and FilterAll (or "") return items unchanged.
func FilterAnnouncements(items []Announcement, term, filter string) []Announcement {
	needle := strings.ToLower(term)
	out := make([]Announcement, 0, len(items))
	for _, a := range items {
		matchesSearch := containsFold(a.Title, needle) ||
			containsFold(a.Content, needle) ||
			containsFold(a.Department, needle)
		matchesFilter := filter == "" || filter == FilterAll ||
			string(a.Priority) == filter || a.Category == filter
		if matchesSearch && matchesFilter {
			out = append(out, a)
		}
	}
	return out
}

// containsFold expects needle already lower-cased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
