package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mitcampus/campus-companion/internal/api/metrics"
	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
)

type CommunityHandler struct {
	service ports.CommunityService
	now     func() time.Time
}

func NewCommunityHandler(service ports.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: service, now: time.Now}
}

type createPostRequest struct {
	Title     string `json:"title" validate:"max=200"`
	Content   string `json:"content" validate:"max=5000"`
	Community string `json:"community"`
	Tags      string `json:"tags" validate:"max=200"`
}

type voteRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// postView is a post as rendered on the board.
type postView struct {
	domain.Post
	Score   int    `json:"score"`
	TimeAgo string `json:"timeAgo"`
}

type postsResponse struct {
	Items       []postView `json:"items"`
	Total       int        `json:"total"`
	Communities []string   `json:"communities"`
}

func (h *CommunityHandler) view(p domain.Post) postView {
	return postView{Post: p, Score: p.Score(), TimeAgo: domain.TimeAgo(p.Timestamp, h.now())}
}

// List returns posts matching q in community, with the caller's own votes.
//
// @Summary      List community posts
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        q          query     string  false  "Search title, content and tags"
// @Param        community  query     string  false  "Community, 'all' for any"
// @Success      200        {object}  postsResponse
// @Failure      401        {object}  map[string]string
// @Router       /v1/community/posts [get]
func (h *CommunityHandler) List(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	posts, err := h.service.List(c.Request().Context(), sess, c.QueryParam("q"), c.QueryParam("community"))
	if err != nil {
		return err
	}

	items := make([]postView, len(posts))
	for i, p := range posts {
		items[i] = h.view(p)
	}
	return c.JSON(http.StatusOK, postsResponse{Items: items, Total: len(items), Communities: domain.Communities})
}

// Create publishes a post.
//
// @Summary      Create a post
// @Tags         community
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "New post; tags are comma separated"
// @Success      201   {object}  postView
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/community/posts [post]
func (h *CommunityHandler) Create(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req createPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), sess, ports.CreatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Community: req.Community,
		Tags:      req.Tags,
	})
	if err != nil {
		return err
	}
	metrics.PostsCreatedTotal.WithLabelValues(post.Community).Inc()
	return c.JSON(http.StatusCreated, h.view(*post))
}

// Vote toggles the caller's vote. Repeating a direction clears it.
//
// @Summary      Vote on a post
// @Tags         community
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post ID"
// @Param        body  body      voteRequest  true  "Vote direction"
// @Success      200   {object}  postView
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/community/posts/{id}/vote [post]
func (h *CommunityHandler) Vote(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	var req voteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	direction, err := domain.ParseVoteDirection(req.Direction)
	if err != nil {
		return err
	}

	post, err := h.service.Vote(c.Request().Context(), sess, c.Param("id"), direction)
	if err != nil {
		return err
	}
	metrics.VotesTotal.WithLabelValues(string(direction), string(post.UserVote)).Inc()
	return c.JSON(http.StatusOK, h.view(*post))
}
