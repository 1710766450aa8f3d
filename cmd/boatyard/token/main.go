package main

// go run cmd/boatyard/token/main.go -sub report-bot

import (
	"flag"
	"fmt"
	"time"

	"boatyard/internal/app/config"
	"boatyard/internal/app/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	subject := flag.String("sub", "report-bot", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	token, err := utils.GenerateJWT([]byte(conf.JwtKey), *subject, utils.ScopeReadBoats, *ttl)
	if err != nil {
		logrus.Fatalf("error issuing token: %v", err)
	}
	fmt.Println(token)
}
