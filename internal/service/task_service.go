// internal/service/task_service.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/unclebandit/contentcal-backend/internal/model"
	"github.com/unclebandit/contentcal-backend/internal/queue"
	"github.com/unclebandit/contentcal-backend/internal/repository"
)

// WorkloadThresholds is the caller-supplied policy for classifying a
// member's open-campaign count.
type WorkloadThresholds struct {
	LowMax    int // counts up to LowMax are "low"
	MediumMax int // counts up to MediumMax are "medium", above is "high"
}

// DefaultWorkloadThresholds matches the sample data: low <3, medium 3-5,
// high >5.
func DefaultWorkloadThresholds() WorkloadThresholds {
	return WorkloadThresholds{LowMax: 2, MediumMax: 5}
}

func (t WorkloadThresholds) Classify(openCount int) model.Workload {
	switch {
	case openCount <= t.LowMax:
		return model.WorkloadLow
	case openCount <= t.MediumMax:
		return model.WorkloadMedium
	default:
		return model.WorkloadHigh
	}
}

type TaskService struct {
	TaskRepo     repository.TaskRepositoryInterface
	MemberRepo   repository.MemberRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	Queue        queue.Queue
	Thresholds   WorkloadThresholds
}

// AssignToSelf sets the task's assignee. Assigning a task the member already
// holds is a no-op, not an error.
func (s *TaskService) AssignToSelf(taskID, memberID string) (*model.Task, error) {
	t, err := s.TaskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if t.AssigneeID == memberID {
		return t, nil
	}

	t, err = s.TaskRepo.UpdateAssignee(taskID, memberID)
	if err != nil {
		return nil, err
	}
	s.publish(t.CampaignID, "task_assigned", fmt.Sprintf("task %q picked up by %s", t.Title, memberID))
	return t, nil
}

// Reassign overwrites the assignee unconditionally.
func (s *TaskService) Reassign(taskID, newMemberID string) (*model.Task, error) {
	t, err := s.TaskRepo.UpdateAssignee(taskID, newMemberID)
	if err != nil {
		return nil, err
	}
	s.publish(t.CampaignID, "task_reassigned", fmt.Sprintf("task %q handed to %s", t.Title, newMemberID))
	return t, nil
}

// MoveTask changes a task's board column. This is what a drag between
// columns calls.
func (s *TaskService) MoveTask(taskID string, status model.TaskStatus) (*model.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown task status: %s", status)
	}
	if err := s.TaskRepo.UpdateStatus(taskID, status); err != nil {
		return nil, err
	}
	return s.TaskRepo.GetByID(taskID)
}

// Board partitions tasks by column. Every column is present even when empty.
func (s *TaskService) Board() map[model.TaskStatus][]*model.Task {
	board := make(map[model.TaskStatus][]*model.Task, len(model.TaskColumns()))
	for _, col := range model.TaskColumns() {
		board[col] = []*model.Task{}
	}
	for t := range s.TaskRepo.All() {
		if _, ok := board[t.Status]; ok {
			board[t.Status] = append(board[t.Status], t)
		}
	}
	return board
}

// WorkloadFor classifies a member by how many non-terminal campaigns they
// are assigned to.
func (s *TaskService) WorkloadFor(memberID string) (model.Workload, error) {
	if _, err := s.MemberRepo.GetByID(memberID); err != nil {
		return "", err
	}
	return s.Thresholds.Classify(s.openCampaigns(memberID)), nil
}

// TeamOverview returns every member with derived workload and active-project
// count.
func (s *TaskService) TeamOverview() []model.MemberOverview {
	overview := []model.MemberOverview{}
	for m := range s.MemberRepo.All() {
		open := s.openCampaigns(m.ID)
		overview = append(overview, model.MemberOverview{
			TeamMember:     *m,
			Workload:       s.Thresholds.Classify(open),
			ActiveProjects: open,
		})
	}
	return overview
}

func (s *TaskService) openCampaigns(memberID string) int {
	count := 0
	for c := range s.CampaignRepo.All() {
		if c.HasAssignee(memberID) && !c.Status.Terminal() {
			count++
		}
	}
	return count
}

func (s *TaskService) publish(campaignID, kind, detail string) {
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
