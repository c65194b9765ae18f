package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/GooferByte/rewardcatalog/internal/catalogcache"
	"github.com/GooferByte/rewardcatalog/internal/config"
	"github.com/GooferByte/rewardcatalog/internal/http"
	"github.com/GooferByte/rewardcatalog/internal/logger"
	"github.com/GooferByte/rewardcatalog/internal/repository"
	"github.com/GooferByte/rewardcatalog/internal/repository/memory"
	"github.com/GooferByte/rewardcatalog/internal/repository/postgres"
	"github.com/GooferByte/rewardcatalog/internal/reward"
	"github.com/GooferByte/rewardcatalog/internal/service"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Environment)
	if !logger.IsDevelopment(cfg.Environment) {
		gin.SetMode(gin.ReleaseMode)
	}

	normalizer, err := reward.NewNormalizer(cfg.BaseAPIURL)
	if err != nil {
		log.WithError(err).Fatal("BASE_API_URL must be an absolute URL")
	}

	var (
		catalogRepo repository.RewardResourceRepository
		balanceRepo repository.BalanceRepository
	)
	if cfg.UseInMemoryStore {
		log.Warn("DATABASE_URL not set, using in-memory store. Data will reset on restart.")
		store := memory.New()
		catalogRepo, balanceRepo = store, store
	} else {
		db, err := sql.Open("postgres", cfg.DBURL)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to postgres")
		}
		if err := db.Ping(); err != nil {
			log.WithError(err).Fatal("postgres ping failed")
		}
		defer db.Close()
		store := postgres.New(db)
		catalogRepo, balanceRepo = store, store
		log.Info("connected to postgres")
	}

	catalog := service.NewCatalogService(catalogRepo, normalizer, catalogcache.New(cfg.CatalogTTL), log)
	earningsSvc := service.NewEarningsService(balanceRepo, log)
	router := http.Router(catalog, earningsSvc, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.WithField("imageBase", normalizer.BaseURL()).Infof("reward catalog listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
