package main

import (
	"hrm-backend/config"
	"hrm-backend/internal/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found, using system environment variables")
	}

	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}

	logrus.Info("running seeder")
	database.SeedAll(db)
	logrus.Info("seeding done")
}
