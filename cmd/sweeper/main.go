package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/cache"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/healthcare-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/healthcare-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/healthcare-scheduler/internal/usecase/appointment"
)

// Completes past-due booked appointments on a fixed interval. Runs alongside
// the API server so stale rows never depend on request traffic to resolve.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	loc := timezone.Location(cfg.Timezone)

	repo := infraRepo.NewAppointmentGormRepository(db)
	availabilityCache := cache.NewAvailabilityCache(rdb)
	sweepUC := ucAppointment.NewSweep(repo, availabilityCache, loc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Sweeper running every %s", cfg.SweepInterval)

	runSweep(ctx, sweepUC)

	ticker := time.NewTicker(cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Sweeper shutting down")
			return
		case <-ticker.C:
			runSweep(ctx, sweepUC)
		}
	}
}

func runSweep(ctx context.Context, uc *ucAppointment.Sweep) {
	runCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	completed, err := uc.Execute(runCtx)
	if err != nil {
		log.Printf("sweep failed after %d completions: %v", completed, err)
		return
	}
	if completed > 0 {
		log.Printf("sweep completed %d appointment(s)", completed)
	}
}
