// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/contentcal-backend/internal/controller"
	"github.com/unclebandit/contentcal-backend/internal/handler"
	"github.com/unclebandit/contentcal-backend/internal/queue"
	"github.com/unclebandit/contentcal-backend/internal/repository"
	"github.com/unclebandit/contentcal-backend/internal/seed"
	"github.com/unclebandit/contentcal-backend/internal/service"
)

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("⚠️ ignoring non-numeric %s=%q\n", key, v)
	}
	return fallback
}

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	campaignRepo := repository.NewCampaignRepository()
	taskRepo := repository.NewTaskRepository()
	memberRepo := repository.NewMemberRepository()

	q := queue.NewInMemoryQueue()
	feed := queue.NewActivityLog(100)
	queue.StartActivitySubscriber(q, feed)

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		Queue:        q,
	}
	calendarService := &service.CalendarService{
		CampaignRepo: campaignRepo,
	}
	thresholds := service.WorkloadThresholds{
		LowMax:    envInt("WORKLOAD_LOW_MAX", service.DefaultWorkloadThresholds().LowMax),
		MediumMax: envInt("WORKLOAD_MEDIUM_MAX", service.DefaultWorkloadThresholds().MediumMax),
	}
	taskService := &service.TaskService{
		TaskRepo:     taskRepo,
		MemberRepo:   memberRepo,
		CampaignRepo: campaignRepo,
		Queue:        q,
		Thresholds:   thresholds,
	}

	// Sample data stands in for the persistence layer.
	for _, m := range seed.Members() {
		if err := memberRepo.Add(m); err != nil {
			log.Fatalf("failed to seed member %s: %v", m.ID, err)
		}
	}
	for _, c := range seed.Campaigns() {
		if err := campaignRepo.Add(c); err != nil {
			log.Fatalf("failed to seed campaign %s: %v", c.ID, err)
		}
	}
	for _, t := range seed.Tasks() {
		if err := taskRepo.Add(t); err != nil {
			log.Fatalf("failed to seed task %s: %v", t.ID, err)
		}
	}
	log.Printf("🌱 Seeded %d campaigns, %d tasks, %d members\n",
		len(seed.Campaigns()), len(seed.Tasks()), len(seed.Members()))

	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
		Feed:            feed,
	}
	calendarController := &controller.CalendarController{
		CalendarService: calendarService,
	}
	taskHandler := handler.NewTaskHandler(taskService)
	teamHandler := handler.NewTeamHandler(taskService)

	r := chi.NewRouter()

	// Campaign routes
	r.Post("/campaigns", campaignController.CreateCampaign)
	r.Get("/campaigns", campaignController.ListCampaigns)
	r.Get("/campaigns/{id}", campaignController.GetCampaign)
	r.Patch("/campaigns/{id}", campaignController.UpdateCampaign)
	r.Delete("/campaigns/{id}", campaignController.DeleteCampaign)
	r.Post("/campaigns/{id}/transition", campaignController.TransitionCampaign)

	// Calendar routes
	r.Get("/calendar", calendarController.GetMonth)
	r.Get("/calendar/shift", calendarController.ShiftMonth)

	// Task board routes
	r.Get("/tasks/board", taskHandler.BoardHandler)
	r.Post("/tasks/{id}/assign", taskHandler.AssignHandler)
	r.Post("/tasks/{id}/reassign", taskHandler.ReassignHandler)
	r.Post("/tasks/{id}/move", taskHandler.MoveHandler)

	// Team routes
	r.Get("/team", teamHandler.ListTeamHandler)
	r.Get("/team/{id}/workload", teamHandler.WorkloadHandler)

	r.Get("/activity", campaignController.RecentActivity)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
