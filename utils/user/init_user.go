package main

import (
	"log"
	"os"

	"github.com/SIPEC/SIPEC-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DB_DSN")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Migrate schema if not exists
	if err := db.AutoMigrate(&models.UserModel{}); err != nil {
		log.Fatalf("failed to migrate user model: %v", err)
	}

	username := os.Getenv("INIT_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("INIT_PASSWORD")
	if password == "" {
		password = "admin"
	}

	var user models.UserModel
	result := db.Where("username = ?", username).First(&user)
	if result.Error == nil {
		log.Printf("User %q already exists\n", username)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	newUser := models.UserModel{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	log.Printf("User %q created\n", username)
}
