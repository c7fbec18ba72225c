package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"nutrifacts/config"
	"nutrifacts/controllers"
	"nutrifacts/routes"
	"nutrifacts/services"
	"nutrifacts/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer utils.SyncLogger()

	if err := config.InitDB(cfg); err != nil {
		utils.Logger.Fatal("database init failed", zap.Error(err))
	}

	index := services.NewFuzzyIndex()
	if err := index.Build(config.DB); err != nil {
		utils.Logger.Fatal("fuzzy index build failed", zap.Error(err))
	}

	cache, err := services.NewCacheService(cfg.RedisAddr, cfg.CacheTTL)
	if err != nil {
		utils.Logger.Fatal("cache init failed", zap.Error(err))
	}
	defer cache.Close()

	loc := utils.LocaleFor(cfg.Language)
	matcher := services.NewMatcherService(loc)
	catalog := services.NewCatalogService(config.DB, index, matcher, cache)
	parser := services.NewParserService(loc)
	recipe := services.NewRecipeService(catalog, parser, loc)

	r := routes.SetupRouter(
		controllers.NewRecipeController(recipe),
		controllers.NewFoodController(catalog),
		controllers.NewNutrientController(catalog),
		cfg.JWTSecret,
	)

	utils.Logger.Info("listening",
		zap.String("port", cfg.Port),
		zap.String("language", loc.Lang),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Logger.Fatal("server stopped", zap.Error(err))
	}
}
