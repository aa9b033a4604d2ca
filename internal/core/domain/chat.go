package domain

import "time"

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatMessage is a single entry in the assistant conversation.
type ChatMessage struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Sender      Sender    `json:"sender"`
	Timestamp   time.Time `json:"timestamp"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// Intent is the coarse topic a chat message is classified into.
type Intent string

const (
	IntentSchedule  Intent = "schedule"
	IntentLibrary   Intent = "library"
	IntentGrades    Intent = "grades"
	IntentWellbeing Intent = "wellbeing"
	IntentEvents    Intent = "events"
	IntentSyllabus  Intent = "syllabus"
	IntentFallback  Intent = "fallback"
)
