package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"furnistore/internal/config"
	"furnistore/internal/database"
	"furnistore/internal/imagestore/local"
	"furnistore/internal/middleware"
	"furnistore/internal/modules/auth"
	"furnistore/internal/modules/inventory"
	"furnistore/internal/modules/project"
	"furnistore/internal/modules/report"
	jwtsvc "furnistore/internal/pkg/jwt"
	"furnistore/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	images, err := local.New(cfg.UploadDir, cfg.StaticBase)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	furnitureRepo := repository.NewFurnitureRepository(db)
	reportRepo := repository.NewReportRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	inventoryService := inventory.NewService(furnitureRepo, images)
	inventoryHandler := inventory.NewHandler(inventoryService)

	reportService := report.NewService(reportRepo, furnitureRepo, nil)
	reportHandler := report.NewHandler(reportService)

	projectService := project.NewService(projectRepo, userRepo, images)
	projectHandler := project.NewHandler(projectService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static(cfg.StaticBase, cfg.UploadDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		inventoryHandler.RegisterPublicRoutes(v1)
		projectHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			inventoryHandler.RegisterProtectedRoutes(protected)
			projectHandler.RegisterProtectedRoutes(protected)
			reportHandler.RegisterRoutes(protected)

			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				authHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
