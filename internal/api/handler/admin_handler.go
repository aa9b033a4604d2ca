package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type publishAnnouncementRequest struct {
	Title          string `json:"title" validate:"max=200"`
	Content        string `json:"content" validate:"max=5000"`
	Priority       string `json:"priority" validate:"omitempty,oneof=high medium low"`
	TargetBranch   string `json:"targetBranch"`
	TargetSemester string `json:"targetSemester"`
	Department     string `json:"department" validate:"max=100"`
}

// Dashboard returns the admin overview. Non-admins receive the Access Denied
// placeholder with status 200.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AdminOverview
// @Router       /v1/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	overview, err := h.service.Overview(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// Publish posts a new announcement.
//
// @Summary      Publish announcement
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      publishAnnouncementRequest  true  "Announcement"
// @Success      201   {object}  domain.Announcement
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/admin/announcements [post]
func (h *AdminHandler) Publish(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req publishAnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.service.PublishAnnouncement(c.Request().Context(), sess, ports.PublishAnnouncementInput{
		Title:          req.Title,
		Content:        req.Content,
		Priority:       domain.Priority(req.Priority),
		TargetBranch:   req.TargetBranch,
		TargetSemester: req.TargetSemester,
		Department:     req.Department,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

// ExportReports downloads every submitted report as a workbook.
//
// @Summary      Export reports
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/reports/export [get]
func (h *AdminHandler) ExportReports(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.service.ExportReports(c.Request().Context(), sess, &buf); err != nil {
		return err
	}

	filename := "reports-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
