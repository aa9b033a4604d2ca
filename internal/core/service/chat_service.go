package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
)

const (
	DefaultTypingDelay = 1500 * time.Millisecond

	// ApologyReply replaces any failed generative call.
	ApologyReply = "Sorry, I'm having trouble connecting right now. Please try again in a moment."

	chatPreamble = "You are Campus Companion, a friendly assistant for students of MIT Muzaffarpur. " +
		"Answer questions about class schedules, syllabus, campus navigation, events, study help and " +
		"student wellbeing. Keep answers short and practical. If a student mentions distress, " +
		"point them to the 24/7 helpline 1800-123-4567 and the campus counselor."

	SourceCanned     = "canned"
	SourceGenerative = "generative"
	SourceFallback   = "fallback"
)

var chatSuggestions = []string{
	"Class schedules and timetables",
	"Syllabus and course information",
	"Campus navigation and room locations",
	"Study help and explanations",
	"Event information and deadlines",
	"Mental health and wellness support",
}

var quickQuestions = []string{
	"What's my next class?",
	"Show me today's schedule",
	"Where is the library?",
	"How do I calculate GPA?",
	"What events are happening?",
	"I'm feeling stressed",
}

// ChatService answers assistant questions either from the canned lookup table
// or, when a generator is configured, from the external model.
type ChatService struct {
	generator   ports.TextGenerator
	typingDelay time.Duration
	now         func() time.Time
	log         zerolog.Logger
}

// NewChatService builds a ChatService. A nil generator selects canned replies.
func NewChatService(generator ports.TextGenerator, typingDelay time.Duration, log zerolog.Logger) *ChatService {
	if typingDelay < 0 {
		typingDelay = 0
	}
	return &ChatService{generator: generator, typingDelay: typingDelay, now: time.Now, log: log}
}

func (s *ChatService) Greeting() domain.ChatMessage {
	return domain.ChatMessage{
		ID:          "1",
		Content:     "Hi! I'm your Campus Companion AI assistant. I'm here to help you with anything related to your college life at MIT Muzaffarpur. You can ask me about:",
		Sender:      domain.SenderAssistant,
		Timestamp:   s.now().UTC(),
		Suggestions: append([]string(nil), chatSuggestions...),
	}
}

func (s *ChatService) QuickQuestions() []string {
	return append([]string(nil), quickQuestions...)
}

// Ask returns the assistant reply to message. Generative failures are never
// returned as errors; they produce ApologyReply instead.
func (s *ChatService) Ask(ctx context.Context, message string) (*ports.ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.ErrEmptyMessage
	}
	intent := ClassifyIntent(message)

	if s.generator != nil {
		text, err := s.generator.Generate(ctx, chatPreamble+"\n\nStudent: "+message)
		if err != nil {
			s.log.Warn().Err(err).Str("intent", string(intent)).Msg("generative reply failed")
			return s.reply(ApologyReply, intent, SourceFallback), nil
		}
		return s.reply(text, intent, SourceGenerative), nil
	}

	if s.typingDelay > 0 {
		t := time.NewTimer(s.typingDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return s.reply(CannedReply(intent), intent, SourceCanned), nil
}

func (s *ChatService) reply(content string, intent domain.Intent, source string) *ports.ChatReply {
	return &ports.ChatReply{
		Message: domain.ChatMessage{
			ID:        uuid.NewString(),
			Content:   content,
			Sender:    domain.SenderAssistant,
			Timestamp: s.now().UTC(),
		},
		Intent: intent,
		Source: source,
	}
}
