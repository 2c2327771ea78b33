package main

import (
	"fmt"
	"log"

	"github.com/smartZeee/worker-side/configs"
	"github.com/smartZeee/worker-side/routes"
	"github.com/smartZeee/worker-side/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// live feed hub
	hub := ws.NewLiveHub()
	go hub.Run()

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
