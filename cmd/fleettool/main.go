package main

import (
	"delivery-dashboard-service/internal/adapters/catalog"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// fleettool validates fleet override files and bootstraps new ones from
// the built-in vehicle table.
//
// With no file it prints the built-in table in override file format, ready
// to edit. Given a file (argument or FLEET_PATH) it validates the file and
// summarizes the vehicles it holds.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	path := os.Getenv("FLEET_PATH")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if strings.TrimSpace(path) == "" {
		if err := printDefaultTable(); err != nil {
			log.Fatal(err)
		}
		return
	}

	table, err := catalog.LoadTable(path)
	if err != nil {
		log.Fatalf("fleet file invalid: %v", err)
	}

	log.Printf("Fleet file OK: %d vehicles.", table.Len())
	for _, v := range table.Vehicles() {
		plan := table.SelectPlan(v.VehicleID)
		log.Printf("  %s (%s): %d stops, %.1f km, %d deliveries",
			v.VehicleID, v.DisplayName, len(plan.Stops), plan.DistanceKm, plan.Deliveries)
	}
}

func printDefaultTable() error {
	table, err := catalog.DefaultTable()
	if err != nil {
		return err
	}

	out, err := catalog.EncodeTable(table)
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
