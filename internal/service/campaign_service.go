// internal/service/campaign_service.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/unclebandit/contentcal-backend/internal/errors"
	"github.com/unclebandit/contentcal-backend/internal/model"
	"github.com/unclebandit/contentcal-backend/internal/queue"
	"github.com/unclebandit/contentcal-backend/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	Queue        queue.Queue
}

type CreateCampaignInput struct {
	ID           string
	Name         string
	ScheduledDay int
	Platform     model.Platform
	ContentType  model.ContentType
	Status       model.Status
	Assignees    []string
	Priority     model.Priority
}

func (s *CampaignService) CreateCampaign(in CreateCampaignInput) (*model.Campaign, error) {
	if in.ScheduledDay < 1 || in.ScheduledDay > 31 {
		return nil, appErrors.NewInvalidDay(in.ScheduledDay)
	}
	if !in.Platform.Valid() {
		return nil, fmt.Errorf("unknown platform: %s", in.Platform)
	}
	if !in.ContentType.Valid() {
		return nil, fmt.Errorf("unknown content type: %s", in.ContentType)
	}

	c := &model.Campaign{
		ID:           in.ID,
		Name:         in.Name,
		ScheduledDay: in.ScheduledDay,
		Platform:     in.Platform,
		ContentType:  in.ContentType,
		Status:       in.Status,
		Assignees:    in.Assignees,
		Priority:     in.Priority,
		CreatedAt:    time.Now(),
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = model.StatusIdea
	} else if !c.Status.Valid() {
		return nil, fmt.Errorf("unknown workflow status: %s", c.Status)
	}
	if c.Priority == "" {
		c.Priority = model.PriorityMedium
	} else if !c.Priority.Valid() {
		return nil, fmt.Errorf("unknown priority: %s", c.Priority)
	}
	if c.Assignees == nil {
		c.Assignees = []string{}
	}

	if err := s.CampaignRepo.Add(c); err != nil {
		return nil, err
	}

	s.publish(c.ID, "created", fmt.Sprintf("campaign %q created as %s", c.Name, c.Status))
	return c, nil
}

// Transition is the only sanctioned way to change a campaign's workflow
// status. Any target is allowed, including moving backwards for corrections,
// except leaving a terminal status.
func (s *CampaignService) Transition(id string, target model.Status) (*model.Campaign, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("unknown workflow status: %s", target)
	}

	c, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c.Status.Terminal() {
		return nil, appErrors.NewInvalidTransition(string(c.Status), string(target))
	}

	from := c.Status
	if err := s.CampaignRepo.UpdateStatus(id, target); err != nil {
		return nil, err
	}

	s.publish(id, "transition", fmt.Sprintf("moved from %s to %s", from, target))
	return c, nil
}

func (s *CampaignService) GetCampaign(id string) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(id)
}

func (s *CampaignService) UpdateCampaign(id string, patch repository.CampaignPatch) (*model.Campaign, error) {
	c, err := s.CampaignRepo.Update(id, patch)
	if err != nil {
		return nil, err
	}

	if patch.ScheduledDay != nil {
		s.publish(id, "rescheduled", fmt.Sprintf("moved to day %d", *patch.ScheduledDay))
	} else {
		s.publish(id, "updated", "campaign details changed")
	}
	return c, nil
}

func (s *CampaignService) RemoveCampaign(id string) {
	s.CampaignRepo.Remove(id)
}

// ListCampaigns runs the filter over the store in insertion order. An empty
// filter returns every campaign.
func (s *CampaignService) ListCampaigns(f Filter) []*model.Campaign {
	return ApplyFilters(s.CampaignRepo.All(), f)
}

func (s *CampaignService) publish(campaignID, kind, detail string) {
	if s.Queue == nil {
		return
	}
	event := queue.CampaignEvent{
		CampaignID: campaignID,
		Kind:       kind,
		Detail:     detail,
		At:         time.Now(),
	}
	if err := s.Queue.Publish(queue.TopicCampaignEvents, event); err != nil {
		log.Println("⚠️ failed to publish campaign event:", err)
	}
}
