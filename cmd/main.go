package main

import (
	"log"

	"github.com/rikuto-mikado/fitness-tracker/config"
	"github.com/rikuto-mikado/fitness-tracker/routes"
	"github.com/rikuto-mikado/fitness-tracker/services"
	"github.com/rikuto-mikado/fitness-tracker/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()

	if err := services.SeedExerciseTypes(); err != nil {
		log.Fatalf("Failed to seed exercise catalog: %v", err)
	}

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)

	r := routes.SetupRouter(hub)
	r.Run(":8080")
}
