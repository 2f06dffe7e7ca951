// internal/handler/task_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/contentcal-backend/internal/errors"
	"github.com/unclebandit/contentcal-backend/internal/model"
	"github.com/unclebandit/contentcal-backend/internal/service"
)

// TaskHandler holds the dependencies for task-board HTTP handlers
type TaskHandler struct {
	Service *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{Service: svc}
}

func respondError(w http.ResponseWriter, err error) {
	var taskNotFound *appErrors.ErrTaskNotFound
	var memberNotFound *appErrors.ErrMemberNotFound
	if errors.As(err, &taskNotFound) || errors.As(err, &memberNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// BoardHandler returns tasks partitioned by board column.
func (h *TaskHandler) BoardHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"columns": h.Service.Board(),
	})
}

// AssignHandler lets a member pick up a task. Repeating the call with the
// same member is a no-op.
func (h *TaskHandler) AssignHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		MemberID string `json:"member_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.Service.AssignToSelf(id, body.MemberID)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

// ReassignHandler hands a task to another member unconditionally.
func (h *TaskHandler) ReassignHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		MemberID string `json:"member_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.Service.Reassign(id, body.MemberID)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

// MoveHandler changes a task's board column (the drop half of drag-and-drop).
func (h *TaskHandler) MoveHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status model.TaskStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.Service.MoveTask(id, body.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}
