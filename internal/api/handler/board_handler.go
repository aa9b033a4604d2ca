package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
)

// BoardHandler serves the dashboard and the announcement board.
type BoardHandler struct {
	dashboard     ports.DashboardService
	announcements ports.AnnouncementService
}

func NewBoardHandler(dashboard ports.DashboardService, announcements ports.AnnouncementService) *BoardHandler {
	return &BoardHandler{dashboard: dashboard, announcements: announcements}
}

type announcementsResponse struct {
	Items []domain.Announcement `json:"items"`
	Total int                   `json:"total"`
}

// Dashboard returns the landing view.
//
// @Summary      Dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Dashboard
// @Failure      401  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *BoardHandler) Dashboard(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	view, err := h.dashboard.Dashboard(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Announcements lists announcements matching q within filter.
//
// @Summary      List announcements
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        q       query     string  false  "Search title, content and department"
// @Param        filter  query     string  false  "Priority or category, 'all' for any"
// @Success      200     {object}  announcementsResponse
// @Failure      401     {object}  map[string]string
// @Router       /v1/announcements [get]
func (h *BoardHandler) Announcements(c echo.Context) error {
	items, err := h.announcements.List(c.Request().Context(), c.QueryParam("q"), c.QueryParam("filter"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcementsResponse{Items: items, Total: len(items)})
}
