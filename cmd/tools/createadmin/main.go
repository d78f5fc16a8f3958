package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Code0plux/Website/internal/modules/auth"
)

// Seeds an admin user: go run ./cmd/tools/createadmin <email> <password>
func main() {
	_ = godotenv.Load()

	if len(os.Args) != 3 {
		log.Fatalf("usage: %s <email> <password>", os.Args[0])
	}
	email, password := os.Args[1], os.Args[2]

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	u, err := auth.NewRepo(db).Create(context.Background(), email, string(hash), "admin")
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin user created: %s (%s)\n", u.Email, u.ID)
}
