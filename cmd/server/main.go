package main

import (
	"log"

	_ "taskgraph/docs"
	"taskgraph/internal/config"
	"taskgraph/internal/server"
)

// @title           Task Graph API
// @version         1.0
// @description     API for managing nested, cross-dependent tasks and their assignments.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
