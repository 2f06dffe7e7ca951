package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/contentcal-backend/internal/handler"
	"github.com/unclebandit/contentcal-backend/internal/model"
	"github.com/unclebandit/contentcal-backend/internal/repository"
	"github.com/unclebandit/contentcal-backend/internal/service"
)

func newTestRouter(t *testing.T) (*chi.Mux, *repository.TaskRepository, *repository.CampaignRepository) {
	t.Helper()

	taskRepo := repository.NewTaskRepository()
	memberRepo := repository.NewMemberRepository()
	campaignRepo := repository.NewCampaignRepository()

	for _, m := range []*model.TeamMember{
		{ID: "m-amara", Name: "Amara", Role: model.RoleEditor},
		{ID: "m-brian", Name: "Brian", Role: model.RoleCopywriter},
	} {
		if err := memberRepo.Add(m); err != nil {
			t.Fatal(err)
		}
	}

	svc := &service.TaskService{
		TaskRepo:     taskRepo,
		MemberRepo:   memberRepo,
		CampaignRepo: campaignRepo,
		Thresholds:   service.DefaultWorkloadThresholds(),
	}

	taskHandler := handler.NewTaskHandler(svc)
	teamHandler := handler.NewTeamHandler(svc)

	r := chi.NewRouter()
	r.Get("/tasks/board", taskHandler.BoardHandler)
	r.Post("/tasks/{id}/assign", taskHandler.AssignHandler)
	r.Post("/tasks/{id}/reassign", taskHandler.ReassignHandler)
	r.Post("/tasks/{id}/move", taskHandler.MoveHandler)
	r.Get("/team", teamHandler.ListTeamHandler)
	r.Get("/team/{id}/workload", teamHandler.WorkloadHandler)
	return r, taskRepo, campaignRepo
}

func addTask(t *testing.T, repo *repository.TaskRepository, id string, status model.TaskStatus) {
	t.Helper()
	err := repo.Add(&model.Task{
		ID:       id,
		Title:    "Task " + id,
		Role:     model.RoleEditor,
		Status:   status,
		Priority: model.PriorityMedium,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestAssignHandlerIdempotent(t *testing.T) {
	r, taskRepo, _ := newTestRouter(t)
	addTask(t, taskRepo, "t-1", model.TaskToDo)

	b, _ := json.Marshal(map[string]string{"member_id": "m-amara"})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/tasks/t-1/assign", bytes.NewReader(b))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("call %d: expected 200, got %d", i+1, w.Code)
		}

		var task model.Task
		if err := json.NewDecoder(w.Body).Decode(&task); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if task.AssigneeID != "m-amara" {
			t.Errorf("call %d: assignee = %s, want m-amara", i+1, task.AssigneeID)
		}
	}
}

func TestReassignHandlerUnknownTask(t *testing.T) {
	r, _, _ := newTestRouter(t)

	b, _ := json.Marshal(map[string]string{"member_id": "m-brian"})
	req := httptest.NewRequest("POST", "/tasks/missing/reassign", bytes.NewReader(b))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestBoardHandlerColumns(t *testing.T) {
	r, taskRepo, _ := newTestRouter(t)
	addTask(t, taskRepo, "t-1", model.TaskToDo)
	addTask(t, taskRepo, "t-2", model.TaskNeedsReview)

	req := httptest.NewRequest("GET", "/tasks/board", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res struct {
		Columns map[string][]model.Task `json:"columns"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(res.Columns) != 4 {
		t.Fatalf("got %d columns, want 4", len(res.Columns))
	}
	if len(res.Columns["to-do"]) != 1 || len(res.Columns["needs-review"]) != 1 {
		t.Errorf("unexpected column contents: %+v", res.Columns)
	}
}

func TestWorkloadHandler(t *testing.T) {
	r, _, campaignRepo := newTestRouter(t)

	for i := 0; i < 6; i++ {
		err := campaignRepo.Add(&model.Campaign{
			ID:           "c-" + string(rune('a'+i)),
			Name:         "Filler",
			ScheduledDay: 3,
			Platform:     model.PlatformWebsite,
			ContentType:  model.ContentCopyOnly,
			Status:       model.StatusDrafting,
			Priority:     model.PriorityLow,
			Assignees:    []string{"m-brian"},
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest("GET", "/team/m-brian/workload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res map[string]string
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res["workload"] != "high" {
		t.Errorf("workload = %s, want high", res["workload"])
	}

	req = httptest.NewRequest("GET", "/team/m-ghost/workload", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown member, got %d", w.Code)
	}
}
