package main

import (
	"agrisync-backend/cmd/config"
	migration "agrisync-backend/cmd/database/migrate"
	"agrisync-backend/internal/utils"
	"fmt"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App setup failed: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
