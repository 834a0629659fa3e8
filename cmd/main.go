package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aumtheo/Energie-Berechner/cmd/controllers"
	"github.com/aumtheo/Energie-Berechner/internal/config"
	"github.com/aumtheo/Energie-Berechner/internal/repo"
	"github.com/aumtheo/Energie-Berechner/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

const defaultConfigPath = "config.json"

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := repo.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}

	if err := repo.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	logService, err := services.NewLogService(db)
	if err != nil {
		log.Fatalf("create log service: %v", err)
	}

	balanceService, err := services.NewBalanceService()
	if err != nil {
		log.Fatalf("create balance service: %v", err)
	}

	locationService, err := services.NewLocationService(db)
	if err != nil {
		log.Fatalf("create location service: %v", err)
	}

	buildingService, err := services.NewBuildingService(db, balanceService, locationService, logService)
	if err != nil {
		log.Fatalf("create building service: %v", err)
	}

	exportService, err := services.NewExportService(logService)
	if err != nil {
		log.Fatalf("create export service: %v", err)
	}

	balanceController, err := controllers.NewBalanceController(balanceService, locationService)
	if err != nil {
		log.Fatalf("create balance controller: %v", err)
	}

	buildingsController, err := controllers.NewBuildingsController(buildingService, exportService)
	if err != nil {
		log.Fatalf("create buildings controller: %v", err)
	}

	locationsController, err := controllers.NewLocationsController(locationService)
	if err != nil {
		log.Fatalf("create locations controller: %v", err)
	}

	logsController, err := controllers.NewLogsController(logService)
	if err != nil {
		log.Fatalf("create logs controller: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	if err := controllers.RegisterHealthRoutes(router); err != nil {
		log.Fatalf("register health routes: %v", err)
	}
	if err := balanceController.RegisterRoutes(router); err != nil {
		log.Fatalf("register balance routes: %v", err)
	}
	if err := buildingsController.RegisterRoutes(router); err != nil {
		log.Fatalf("register buildings routes: %v", err)
	}
	if err := locationsController.RegisterRoutes(router); err != nil {
		log.Fatalf("register locations routes: %v", err)
	}
	if err := logsController.RegisterRoutes(router); err != nil {
		log.Fatalf("register logs routes: %v", err)
	}

	if err := startCron(buildingService); err != nil {
		log.Fatalf("start cron: %v", err)
	}

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

type snapshotRecalculator interface {
	RecalculateAll(ctx context.Context) (int, error)
}

// startCron keeps the stored balance snapshots in sync with edits made
// directly in the database, e.g. updated climate reference data.
func startCron(service snapshotRecalculator) error {
	if service == nil {
		return errors.New("building service is nil")
	}

	scheduler := cron.New()

	if _, err := scheduler.AddFunc("@every 1h", func() {
		if _, err := service.RecalculateAll(context.Background()); err != nil {
			log.Printf("recalculate snapshots: %v", err)
		}
	}); err != nil {
		return err
	}

	scheduler.Start()
	return nil
}
