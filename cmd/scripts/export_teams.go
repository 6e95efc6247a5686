package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hackbits-tech/hackbits-backend/internal/config"
	"github.com/hackbits-tech/hackbits-backend/internal/lifecycle"
	mongorepo "github.com/hackbits-tech/hackbits-backend/internal/repositories/mongodb"
	"github.com/hackbits-tech/hackbits-backend/pkg/mongodb"
)

// Exports all registered teams to a CSV file for the organizing committee.
// Usage: go run cmd/scripts/export_teams.go [output.csv]
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using environment variables")
	}

	outputPath := "teams.csv"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	uri := config.GetEnv("MONGODB_URI", "mongodb://localhost:27017")
	database := config.GetEnv("MONGODB_DATABASE", "hackbits")

	client, err := mongodb.NewClient(uri)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	teamRepo := mongorepo.NewTeamRepository(client.Database(database))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	teams, err := teamRepo.FindAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load teams: %v", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", outputPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"registrationNumber", "teamName", "teamSize", "problemStatement",
		"leaderName", "leaderEmail", "leaderPhone", "memberCount",
		"paymentStatus", "stage", "ticketNumber", "checkedIn", "checkInTime",
	}
	if err := writer.Write(header); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}

	for _, team := range teams {
		checkInTime := ""
		if team.CheckInTime != nil {
			checkInTime = team.CheckInTime.Format(time.RFC3339)
		}
		record := []string{
			team.RegistrationNumber,
			team.TeamName,
			string(team.TeamSize),
			team.ProblemStatement,
			team.Leader.Name,
			team.Leader.Email,
			team.Leader.Phone,
			strconv.Itoa(len(team.Members) + 1),
			string(team.PaymentStatus),
			string(lifecycle.DeriveStage(team)),
			team.TicketNumber,
			strconv.FormatBool(team.CheckedIn),
			checkInTime,
		}
		if err := writer.Write(record); err != nil {
			log.Fatalf("Failed to write record for %s: %v", team.RegistrationNumber, err)
		}
	}

	fmt.Printf("Exported %d teams to %s\n", len(teams), outputPath)
}
