// internal/handler/team_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/contentcal-backend/internal/service"
)

// TeamHandler serves team-member views derived from the campaign store.
type TeamHandler struct {
	Service *service.TaskService
}

func NewTeamHandler(svc *service.TaskService) *TeamHandler {
	return &TeamHandler{Service: svc}
}

// ListTeamHandler returns every member with workload and active-project count.
func (h *TeamHandler) ListTeamHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"members": h.Service.TeamOverview(),
	})
}

// WorkloadHandler returns the low/medium/high classification for one member.
func (h *TeamHandler) WorkloadHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	workload, err := h.Service.WorkloadFor(id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"member_id": id,
		"workload":  workload,
	})
}
