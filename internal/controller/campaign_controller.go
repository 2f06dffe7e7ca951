// internal/controller/campaign_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/contentcal-backend/internal/errors"
	"github.com/unclebandit/contentcal-backend/internal/model"
	"github.com/unclebandit/contentcal-backend/internal/queue"
	"github.com/unclebandit/contentcal-backend/internal/repository"
	"github.com/unclebandit/contentcal-backend/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
	Feed            *queue.ActivityLog
}

// writeError maps the store's error kinds onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var campaignNotFound *appErrors.ErrCampaignNotFound
	var taskNotFound *appErrors.ErrTaskNotFound
	var memberNotFound *appErrors.ErrMemberNotFound
	var duplicate *appErrors.ErrDuplicateID
	var invalidDay *appErrors.ErrInvalidDay
	var invalidTransition *appErrors.ErrInvalidTransition

	switch {
	case errors.As(err, &campaignNotFound), errors.As(err, &taskNotFound), errors.As(err, &memberNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &duplicate), errors.As(err, &invalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &invalidDay):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID           string            `json:"id"`
		Name         string            `json:"name"`
		ScheduledDay int               `json:"scheduled_day"`
		Platform     model.Platform    `json:"platform"`
		ContentType  model.ContentType `json:"content_type"`
		Status       model.Status      `json:"status"`
		Assignees    []string          `json:"assignees"`
		Priority     model.Priority    `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign, err := c.CampaignService.CreateCampaign(service.CreateCampaignInput{
		ID:           body.ID,
		Name:         body.Name,
		ScheduledDay: body.ScheduledDay,
		Platform:     body.Platform,
		ContentType:  body.ContentType,
		Status:       body.Status,
		Assignees:    body.Assignees,
		Priority:     body.Priority,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(campaign)
}

func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter := service.ClearFilters()
	if v := r.URL.Query().Get("status"); v != "" {
		status := model.Status(v)
		filter.Status = &status
	}
	if v := r.URL.Query().Get("platform"); v != "" {
		platform := model.Platform(v)
		filter.Platform = &platform
	}
	if v := r.URL.Query().Get("assignee"); v != "" {
		assignee := v
		filter.Assignee = &assignee
	}

	campaigns := c.CampaignService.ListCampaigns(filter)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  campaigns,
		"count": len(campaigns),
	})
}

func (c *CampaignController) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	campaign, err := c.CampaignService.GetCampaign(id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(campaign)
}

func (c *CampaignController) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch repository.CampaignPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign, err := c.CampaignService.UpdateCampaign(id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(campaign)
}

func (c *CampaignController) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c.CampaignService.RemoveCampaign(id)
	w.WriteHeader(http.StatusNoContent)
}

func (c *CampaignController) TransitionCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status model.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign, err := c.CampaignService.Transition(id, body.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(campaign)
}

// RecentActivity returns the newest campaign events from the feed.
func (c *CampaignController) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"events": c.Feed.Recent(limit),
	})
}
