package service_test

import (
	"errors"
	"testing"

	appErrors "github.com/unclebandit/contentcal-backend/internal/errors"
	"github.com/unclebandit/contentcal-backend/internal/model"
	"github.com/unclebandit/contentcal-backend/internal/repository"
	"github.com/unclebandit/contentcal-backend/internal/service"
)

func seedCampaign(t *testing.T, repo *repository.CampaignRepository, id string, status model.Status, platform model.Platform, assignees ...string) {
	t.Helper()
	err := repo.Add(&model.Campaign{
		ID:           id,
		Name:         "Campaign " + id,
		ScheduledDay: 10,
		Platform:     platform,
		ContentType:  model.ContentStillGraphic,
		Status:       status,
		Priority:     model.PriorityMedium,
		Assignees:    assignees,
	})
	if err != nil {
		t.Fatalf("seeding %s failed: %v", id, err)
	}
}

func TestTransitionOutOfTerminalStatusFails(t *testing.T) {
	repo := repository.NewCampaignRepository()
	svc := &service.CampaignService{CampaignRepo: repo}
	seedCampaign(t, repo, "c-1", model.StatusPosted, model.PlatformInstagram)
	seedCampaign(t, repo, "c-2", model.StatusCancelled, model.PlatformEmail)

	for _, id := range []string{"c-1", "c-2"} {
		_, err := svc.Transition(id, model.StatusEditing)
		var invalid *appErrors.ErrInvalidTransition
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: expected ErrInvalidTransition, got %v", id, err)
		}

		c, err := repo.GetByID(id)
		if err != nil {
			t.Fatal(err)
		}
		if c.Status == model.StatusEditing {
			t.Errorf("%s: status changed despite failed transition", id)
		}
	}
}

func TestTransitionAllowsCorrections(t *testing.T) {
	repo := repository.NewCampaignRepository()
	svc := &service.CampaignService{CampaignRepo: repo}
	seedCampaign(t, repo, "c-1", model.StatusApproved, model.PlatformInstagram)

	c, err := svc.Transition("c-1", model.StatusEditing)
	if err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if c.Status != model.StatusEditing {
		t.Errorf("status = %s, want editing", c.Status)
	}
}

func TestTransitionUnknownCampaign(t *testing.T) {
	repo := repository.NewCampaignRepository()
	svc := &service.CampaignService{CampaignRepo: repo}

	_, err := svc.Transition("missing", model.StatusDrafting)
	var notFound *appErrors.ErrCampaignNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	repo := repository.NewCampaignRepository()
	svc := &service.CampaignService{CampaignRepo: repo}
	seedCampaign(t, repo, "c-1", model.StatusIdea, model.PlatformInstagram)

	if _, err := svc.Transition("c-1", model.Status("archived")); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestCreateCampaignDefaults(t *testing.T) {
	repo := repository.NewCampaignRepository()
	svc := &service.CampaignService{CampaignRepo: repo}

	c, err := svc.CreateCampaign(service.CreateCampaignInput{
		Name:         "New Reel",
		ScheduledDay: 7,
		Platform:     model.PlatformTikTok,
		ContentType:  model.ContentReelShort,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if c.ID == "" {
		t.Error("expected a generated id")
	}
	if c.Status != model.StatusIdea {
		t.Errorf("status = %s, want idea", c.Status)
	}
	if c.Priority != model.PriorityMedium {
		t.Errorf("priority = %s, want medium", c.Priority)
	}
}

func TestCreateCampaignRejectsInvalidDay(t *testing.T) {
	repo := repository.NewCampaignRepository()
	svc := &service.CampaignService{CampaignRepo: repo}

	_, err := svc.CreateCampaign(service.CreateCampaignInput{
		Name:         "Bad Day",
		ScheduledDay: 42,
		Platform:     model.PlatformEmail,
		ContentType:  model.ContentCopyOnly,
	})
	var invalid *appErrors.ErrInvalidDay
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
}

func TestListCampaignsEmptyFilterReturnsAllInOrder(t *testing.T) {
	repo := repository.NewCampaignRepository()
	svc := &service.CampaignService{CampaignRepo: repo}
	seedCampaign(t, repo, "c-1", model.StatusDrafting, model.PlatformInstagram)
	seedCampaign(t, repo, "c-2", model.StatusPosted, model.PlatformInstagram)
	seedCampaign(t, repo, "c-3", model.StatusDrafting, model.PlatformTikTok)

	got := svc.ListCampaigns(service.ClearFilters())
	if len(got) != 3 {
		t.Fatalf("got %d campaigns, want 3", len(got))
	}
	for i, want := range []string{"c-1", "c-2", "c-3"} {
		if got[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestListCampaignsFiltersAreANDed(t *testing.T) {
	repo := repository.NewCampaignRepository()
	svc := &service.CampaignService{CampaignRepo: repo}
	seedCampaign(t, repo, "c-1", model.StatusDrafting, model.PlatformInstagram)
	seedCampaign(t, repo, "c-2", model.StatusPosted, model.PlatformInstagram)
	seedCampaign(t, repo, "c-3", model.StatusDrafting, model.PlatformTikTok)

	status := model.StatusDrafting
	platform := model.PlatformInstagram
	got := svc.ListCampaigns(service.Filter{Status: &status, Platform: &platform})

	if len(got) != 1 || got[0].ID != "c-1" {
		t.Fatalf("expected only c-1, got %d campaigns", len(got))
	}
}

func TestListCampaignsAssigneeFilter(t *testing.T) {
	repo := repository.NewCampaignRepository()
	svc := &service.CampaignService{CampaignRepo: repo}
	seedCampaign(t, repo, "c-1", model.StatusDrafting, model.PlatformInstagram, "m-amara", "m-brian")
	seedCampaign(t, repo, "c-2", model.StatusDrafting, model.PlatformInstagram, "m-cindy")

	assignee := "m-brian"
	got := svc.ListCampaigns(service.Filter{Assignee: &assignee})

	if len(got) != 1 || got[0].ID != "c-1" {
		t.Fatalf("expected only c-1 for assignee m-brian, got %d campaigns", len(got))
	}
}
