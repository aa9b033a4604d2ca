package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

// Recorder counts routed reports.
type Recorder interface {
	ReportRouted(category string, urgent bool)
}

// AlertHandler routes reports to campus staff. Urgent categories raise an
// alert at error level; the rest are logged for the daily review.
type AlertHandler struct {
	recorder Recorder
	log      zerolog.Logger
}

func NewAlertHandler(recorder Recorder, log zerolog.Logger) *AlertHandler {
	return &AlertHandler{recorder: recorder, log: log}
}

func (h *AlertHandler) Handle(_ context.Context, report domain.Report) error {
	if h.recorder != nil {
		h.recorder.ReportRouted(report.Category, report.Urgent)
	}

	ev := h.log.Info()
	msg := "report queued for review"
	if report.Urgent {
		ev = h.log.Error()
		msg = "URGENT report raised"
	}
	ev.Str("reference_id", report.ReferenceID).
		Str("category", report.Category).
		Bool("anonymous", report.Anonymous).
		Str("location", report.Location).
		Msg(msg)
	return nil
}
