//cmd/seeder/main.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

// Posts extra fixture records from seed/*.json to a running server. The
// server already seeds its own baseline sample data on startup.

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	seedFiles := map[string]string{
		"seed/campaigns.json": "/campaigns",
	}

	for file, path := range seedFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("failed to read %s: %v", file, err)
		}

		var records []json.RawMessage
		if err := json.Unmarshal(content, &records); err != nil {
			log.Fatalf("failed to parse %s: %v", file, err)
		}

		for _, record := range records {
			resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(record))
			if err != nil {
				log.Fatalf("failed to post record from %s: %v", file, err)
			}
			if resp.StatusCode >= 300 {
				log.Printf("⚠️ server rejected a record from %s: %s\n", file, resp.Status)
			}
			resp.Body.Close()
		}
		fmt.Printf("Seeded: %s\n", file)
	}

	fmt.Println("Seeding completed successfully!")
}
