package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/cache"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/healthcare-scheduler/internal/db"
	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/middleware"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	policy, err := domain.NewWorkingHours(
		cfg.WorkdayStart,
		cfg.WorkdayEnd,
		cfg.MaxBookingMinutes,
		cfg.SlotMinutes,
	)
	if err != nil {
		log.Fatalf("invalid booking policy: %v", err)
	}

	rdb, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, policy)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
