package main

// go run cmd/boatyard/main.go

import (
	"context"
	"time"

	"boatyard/internal/app/config"
	"boatyard/internal/app/dsn"
	"boatyard/internal/app/handler"
	"boatyard/internal/app/pkg"
	"boatyard/internal/app/repository"
	"boatyard/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "boatyard/docs" // Swagger docs
)

// @title Boatyard API
// @version 1.0
// @description Read-only reports over boats, captains and classifications.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	conf.SetupLogger()

	postgresString := dsn.FromEnv()
	if postgresString == "" {
		logrus.Fatal("DB_HOST is not set")
	}

	rep, errRep := repository.New(postgresString)
	if errRep != nil {
		logrus.Fatalf("error initializing repository: %v", errRep)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	cache, err := utils.NewResponseCache(ctx, conf.RedisEndpoint, conf.RedisPassword, conf.CacheTTL)
	cancel()
	if err != nil {
		logrus.Warnf("redis unavailable, response cache disabled: %v", err)
		cache = nil
	}
	defer cache.Close()

	if conf.JwtKey == "" {
		logrus.Warn("JWT_KEY is not set, API is open")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	hand := handler.NewHandler(rep, cache, conf.JwtKey)

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
