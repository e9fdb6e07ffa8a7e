package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/teamcal/teamcal/internal/api/response"
	"github.com/teamcal/teamcal/internal/api/validation"
	"github.com/teamcal/teamcal/internal/meeting"
)

// meetingRequest is the body of POST /api/meetings and PUT /api/meetings/{id}.
// Field names match what the calendar client sends.
type meetingRequest struct {
	DevelopmentGroupID int64  `json:"developmentGroupId"`
	Description        string `json:"description"`
	StartTime          string `json:"startTime"`
	EndTime            string `json:"endTime"`
	Room               string `json:"room"`
}

// meetingResponse is a single meeting in list payloads. Keys are the column
// names the calendar client reads.
type meetingResponse struct {
	ID                 int64  `json:"id"`
	DevelopmentGroupID int64  `json:"development_group_id"`
	Description        string `json:"description"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	Room               string `json:"room"`
}

func toMeetingResponse(m *meeting.Meeting) meetingResponse {
	return meetingResponse{
		ID:                 m.ID,
		DevelopmentGroupID: m.GroupID,
		Description:        m.Description,
		StartTime:          m.Start.UTC().Format(time.RFC3339),
		EndTime:            m.End.UTC().Format(time.RFC3339),
		Room:               m.Room,
	}
}

// MeetingHandler handles meeting CRUD endpoints.
type MeetingHandler struct {
	repo meeting.Repository
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(repo meeting.Repository) *MeetingHandler {
	return &MeetingHandler{repo: repo}
}

// List handles GET /api/meetings/{teamId}.
func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "teamId"), 10, 64)
	if err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidID, "teamId must be an integer")
		return
	}

	meetings, err := h.repo.ListByGroup(r.Context(), groupID)
	if err != nil {
		slog.Error("failed to list meetings", "error", err, "groupId", groupID)
		response.Err(w, http.StatusInternalServerError, response.CodeInternalError, "Internal server error")
		return
	}

	items := make([]meetingResponse, 0, len(meetings))
	for i := range meetings {
		items = append(items, toMeetingResponse(&meetings[i]))
	}

	response.JSON(w, http.StatusOK, items)
}

// Create handles POST /api/meetings.
func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	m, ok := h.decodeMeeting(w, r)
	if !ok {
		return
	}

	if err := h.repo.Create(r.Context(), m); err != nil {
		h.writeStoreError(w, err, "create")
		return
	}

	response.Created(w, m.ID, "Meeting created successfully")
}

// Update handles PUT /api/meetings/{id}.
func (h *MeetingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidID, "id must be an integer")
		return
	}

	m, ok := h.decodeMeeting(w, r)
	if !ok {
		return
	}
	m.ID = id

	if err := h.repo.Update(r.Context(), m); err != nil {
		h.writeStoreError(w, err, "update")
		return
	}

	response.Message(w, http.StatusOK, "Meeting updated successfully")
}

// Delete handles DELETE /api/meetings/{id}. Deletion is idempotent; unknown
// ids report success.
func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidID, "id must be an integer")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete meeting", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, response.CodeInternalError, "Internal server error")
		return
	}

	response.Message(w, http.StatusOK, "Meeting deleted successfully")
}

// decodeMeeting parses and validates a meeting request body. On failure it
// writes the error response and returns ok=false.
func (h *MeetingHandler) decodeMeeting(w http.ResponseWriter, r *http.Request) (*meeting.Meeting, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req meetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, response.CodeInvalidJSON, "Request body must be valid JSON")
		return nil, false
	}

	start, end, fieldErrors := validation.ValidateMeetingInput(validation.MeetingInput{
		GroupID:     req.DevelopmentGroupID,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Room:        req.Room,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, response.CodeValidationError, "Input validation failed", fieldErrors)
		return nil, false
	}

	return &meeting.Meeting{
		GroupID:     req.DevelopmentGroupID,
		Description: req.Description,
		Start:       meeting.NormalizeTime(start),
		End:         meeting.NormalizeTime(end),
		Room:        req.Room,
	}, true
}

// writeStoreError maps store errors for create and update onto the HTTP
// error taxonomy.
func (h *MeetingHandler) writeStoreError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, meeting.ErrGroupNotFound):
		response.Err(w, http.StatusNotFound, response.CodeNotFound, "Development group not found")
	case errors.Is(err, meeting.ErrNotFound):
		response.Err(w, http.StatusNotFound, response.CodeNotFound, "Meeting not found")
	case errors.Is(err, meeting.ErrOverlap):
		response.Err(w, http.StatusConflict, response.CodeConflict, "Meeting time conflicts with existing meeting")
	default:
		slog.Error("failed to "+op+" meeting", "error", err)
		response.Err(w, http.StatusInternalServerError, response.CodeInternalError, "Internal server error")
	}
}
