package main

import (
	"context"
	"flag"

	"boatyard/internal/app/config"
	"boatyard/internal/app/dsn"
	"boatyard/internal/app/repository"

	"github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Bool("seed", false, "load the demo fleet after migrating")
	flag.Parse()

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	conf.SetupLogger()

	rep, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	// captains, classifications, boats, boat_classifications
	if err := rep.Migrate(); err != nil {
		logrus.Fatalf("error migrating: %v", err)
	}
	logrus.Info("Database migration completed")

	if !*seed {
		return
	}
	if err := rep.Seed(context.Background(), repository.DefaultFleet()); err != nil {
		logrus.Fatalf("error seeding: %v", err)
	}
	logrus.Info("Demo fleet loaded")
}
