package repository

import (
	"iter"
	"sync"

	appErrors "github.com/unclebandit/contentcal-backend/internal/errors"
	"github.com/unclebandit/contentcal-backend/internal/model"
)

type MemberRepositoryInterface interface {
	Add(m *model.TeamMember) error
	GetByID(id string) (*model.TeamMember, error)
	All() iter.Seq[*model.TeamMember]
}

type MemberRepository struct {
	mu    sync.RWMutex
	items map[string]*model.TeamMember
	order []string
}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{items: make(map[string]*model.TeamMember)}
}

func (r *MemberRepository) Add(m *model.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[m.ID]; ok {
		return appErrors.NewDuplicateID(m.ID)
	}
	r.items[m.ID] = m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *MemberRepository) GetByID(id string) (*model.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok {
		return nil, appErrors.NewMemberNotFound(id)
	}
	return m, nil
}

func (r *MemberRepository) All() iter.Seq[*model.TeamMember] {
	return func(yield func(*model.TeamMember) bool) {
		r.mu.RLock()
		snapshot := make([]*model.TeamMember, 0, len(r.order))
		for _, id := range r.order {
			snapshot = append(snapshot, r.items[id])
		}
		r.mu.RUnlock()

		for _, m := range snapshot {
			if !yield(m) {
				return
			}
		}
	}
}

var _ MemberRepositoryInterface = (*MemberRepository)(nil)
