package repository

import (
	"iter"
	"sync"
	"time"

	appErrors "github.com/unclebandit/contentcal-backend/internal/errors"
	"github.com/unclebandit/contentcal-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	Add(c *model.Campaign) error
	GetByID(id string) (*model.Campaign, error)
	Update(id string, patch CampaignPatch) (*model.Campaign, error)
	UpdateStatus(id string, status model.Status) error
	Remove(id string)
	All() iter.Seq[*model.Campaign]
}

// CampaignPatch is a partial update. Nil fields are left untouched.
type CampaignPatch struct {
	Name         *string            `json:"name"`
	ScheduledDay *int               `json:"scheduled_day"`
	Platform     *model.Platform    `json:"platform"`
	ContentType  *model.ContentType `json:"content_type"`
	Priority     *model.Priority    `json:"priority"`
	Assignees    *[]string          `json:"assignees"`
}

// CampaignRepository is the in-memory campaign store. It owns the
// authoritative records; everything else reads through All or mutates
// through Update/UpdateStatus. The mutex is here because the store is
// shared across HTTP handlers.
type CampaignRepository struct {
	mu    sync.RWMutex
	items map[string]*model.Campaign
	order []string
}

func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{items: make(map[string]*model.Campaign)}
}

func (r *CampaignRepository) Add(c *model.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; ok {
		return appErrors.NewDuplicateID(c.ID)
	}
	r.items[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *CampaignRepository) GetByID(id string) (*model.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	return c, nil
}

// Update validates the whole patch before touching the record, so a failed
// update leaves the campaign exactly as it was.
func (r *CampaignRepository) Update(id string, patch CampaignPatch) (*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	if patch.ScheduledDay != nil && (*patch.ScheduledDay < 1 || *patch.ScheduledDay > 31) {
		return nil, appErrors.NewInvalidDay(*patch.ScheduledDay)
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.ScheduledDay != nil {
		c.ScheduledDay = *patch.ScheduledDay
	}
	if patch.Platform != nil {
		c.Platform = *patch.Platform
	}
	if patch.ContentType != nil {
		c.ContentType = *patch.ContentType
	}
	if patch.Priority != nil {
		c.Priority = *patch.Priority
	}
	if patch.Assignees != nil {
		c.Assignees = *patch.Assignees
	}
	now := time.Now()
	c.UpdatedAt = &now
	return c, nil
}

func (r *CampaignRepository) UpdateStatus(id string, status model.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return appErrors.NewCampaignNotFound(id)
	}
	c.Status = status
	now := time.Now()
	c.UpdatedAt = &now
	return nil
}

// Remove is a silent no-op when the id is absent.
func (r *CampaignRepository) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// All yields campaigns in insertion order. The sequence is restartable and
// iterates over a snapshot, so callers may range it while handlers mutate
// the store.
func (r *CampaignRepository) All() iter.Seq[*model.Campaign] {
	return func(yield func(*model.Campaign) bool) {
		r.mu.RLock()
		snapshot := make([]*model.Campaign, 0, len(r.order))
		for _, id := range r.order {
			snapshot = append(snapshot, r.items[id])
		}
		r.mu.RUnlock()

		for _, c := range snapshot {
			if !yield(c) {
				return
			}
		}
	}
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
