package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/teamcal/teamcal/internal/api/response"
	"github.com/teamcal/teamcal/internal/api/validation"
	"github.com/teamcal/teamcal/internal/group"
)

type createGroupRequest struct {
	Name string `json:"name"`
}

type groupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GroupHandler handles development group endpoints.
type GroupHandler struct {
	repo group.Repository
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(repo group.Repository) *GroupHandler {
	return &GroupHandler{repo: repo}
}

// List handles GET /api/development-groups.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list development groups", "error", err)
		response.Err(w, http.StatusInternalServerError, response.CodeInternalError, "Internal server error")
		return
	}

	items := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		items = append(items, groupResponse{ID: g.ID, Name: g.Name})
	}

	response.JSON(w, http.StatusOK, items)
}

// Create handles POST /api/development-groups.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidJSON, "Request body must be valid JSON")
		return
	}

	if fieldErrors := validation.ValidateGroupInput(validation.GroupInput{Name: req.Name}); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, response.CodeValidationError, "Input validation failed", fieldErrors)
		return
	}

	g := &group.Group{Name: req.Name}
	if err := h.repo.Create(r.Context(), g); err != nil {
		slog.Error("failed to create development group", "error", err)
		response.Err(w, http.StatusInternalServerError, response.CodeInternalError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusCreated, groupResponse{ID: g.ID, Name: g.Name})
}
