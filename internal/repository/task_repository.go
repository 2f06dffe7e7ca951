package repository

import (
	"iter"
	"sync"

	appErrors "github.com/unclebandit/contentcal-backend/internal/errors"
	"github.com/unclebandit/contentcal-backend/internal/model"
)

type TaskRepositoryInterface interface {
	Add(t *model.Task) error
	GetByID(id string) (*model.Task, error)
	UpdateAssignee(id, memberID string) (*model.Task, error)
	UpdateStatus(id string, status model.TaskStatus) error
	All() iter.Seq[*model.Task]
}

// TaskRepository is the in-memory task store, same shape as the campaign one.
type TaskRepository struct {
	mu    sync.RWMutex
	items map[string]*model.Task
	order []string
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{items: make(map[string]*model.Task)}
}

func (r *TaskRepository) Add(t *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[t.ID]; ok {
		return appErrors.NewDuplicateID(t.ID)
	}
	r.items[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

func (r *TaskRepository) GetByID(id string) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return nil, appErrors.NewTaskNotFound(id)
	}
	return t, nil
}

func (r *TaskRepository) UpdateAssignee(id, memberID string) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok {
		return nil, appErrors.NewTaskNotFound(id)
	}
	t.AssigneeID = memberID
	return t, nil
}

func (r *TaskRepository) UpdateStatus(id string, status model.TaskStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok {
		return appErrors.NewTaskNotFound(id)
	}
	t.Status = status
	return nil
}

func (r *TaskRepository) All() iter.Seq[*model.Task] {
	return func(yield func(*model.Task) bool) {
		r.mu.RLock()
		snapshot := make([]*model.Task, 0, len(r.order))
		for _, id := range r.order {
			snapshot = append(snapshot, r.items[id])
		}
		r.mu.RUnlock()

		for _, t := range snapshot {
			if !yield(t) {
				return
			}
		}
	}
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)
