package main

import (
	"context"
	"log"

	"furnistore/internal/database"
	"furnistore/internal/domain"
	"furnistore/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("furnistore.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM furniture_reports")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM furniture")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	furniture := repository.NewFurnitureRepository(db)

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Name:         "Administrator",
		Email:        "admin@furnistore.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, &admin); err != nil {
		log.Fatal("seed admin failed:", err)
	}

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	client := domain.User{
		Name:         "Demo Client",
		Email:        "client@furnistore.local",
		PasswordHash: string(clientHash),
		Role:         domain.RoleClient,
	}
	if err := users.Create(ctx, &client); err != nil {
		log.Fatal("seed client failed:", err)
	}

	log.Println("Creating furniture...")
	sofa := domain.Furniture{
		Name: "Sofa",
		SubFurniture: []domain.SubFurniture{
			{
				ID:       "subFurniture-" + uuid.NewString(),
				Name:     "Cushion",
				Image:    "/static/uploads/seed-cushion.jpg",
				Price:    10,
				Quantity: 5,
			},
			{
				ID:       "subFurniture-" + uuid.NewString(),
				Name:     "Cover",
				Image:    "/static/uploads/seed-cover.jpg",
				Price:    25.5,
				Quantity: 3,
			},
		},
	}
	if err := furniture.Create(ctx, &sofa); err != nil {
		log.Fatal("seed furniture failed:", err)
	}

	table := domain.Furniture{Name: "Dining Table"}
	if err := furniture.Create(ctx, &table); err != nil {
		log.Fatal("seed furniture failed:", err)
	}

	log.Println("Seed complete.")
}
