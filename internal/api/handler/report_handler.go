package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mitcampus/campus-companion/internal/api/metrics"
	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
)

// ReportHandler serves the support directory and anonymous reporting.
type ReportHandler struct {
	service   ports.ReportService
	directory domain.SupportDirectory
}

func NewReportHandler(service ports.ReportService, directory domain.SupportDirectory) *ReportHandler {
	return &ReportHandler{service: service, directory: directory}
}

type reportCategoriesResponse struct {
	Categories        []domain.ReportCategory   `json:"categories"`
	EmergencyContacts []domain.EmergencyContact `json:"emergencyContacts"`
}

type submitReportRequest struct {
	Category    string `json:"category"`
	Description string `json:"description" validate:"max=5000"`
	Location    string `json:"location" validate:"max=200"`
	// Anonymous defaults to true when omitted.
	Anonymous *bool `json:"anonymous"`
}

type submitReportResponse struct {
	ReferenceID string `json:"referenceId"`
	Urgent      bool   `json:"urgent"`
	Message     string `json:"message"`
}

// Support returns the mental-health resource directory.
//
// @Summary      Support directory
// @Tags         support
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.SupportDirectory
// @Router       /v1/support [get]
func (h *ReportHandler) Support(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory)
}

// Categories lists report categories and emergency numbers.
//
// @Summary      Report categories
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reportCategoriesResponse
// @Router       /v1/reports/categories [get]
func (h *ReportHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, reportCategoriesResponse{
		Categories:        domain.ReportCategories,
		EmergencyContacts: domain.EmergencyContacts,
	})
}

// Submit files an incident report.
//
// @Summary      Submit a report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitReportRequest  true  "Report"
// @Success      201   {object}  submitReportResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/reports [post]
func (h *ReportHandler) Submit(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req submitReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	anonymous := true
	if req.Anonymous != nil {
		anonymous = *req.Anonymous
	}

	report, err := h.service.Submit(c.Request().Context(), sess, ports.SubmitReportInput{
		Category:    req.Category,
		Description: req.Description,
		Location:    req.Location,
		Anonymous:   anonymous,
	})
	if err != nil {
		return err
	}
	metrics.ReportsSubmittedTotal.WithLabelValues(report.Category).Inc()
	return c.JSON(http.StatusCreated, submitReportResponse{
		ReferenceID: report.ReferenceID,
		Urgent:      report.Urgent,
		Message:     "Your report has been submitted. Keep the reference ID to follow up.",
	})
}
