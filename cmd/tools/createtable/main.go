package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// One-shot schema bootstrap for a fresh database.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS products (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  price VARCHAR(64) NOT NULL,
	  description TEXT,
	  images JSON NULL,
	  image VARCHAR(1024) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS users (
	  id CHAR(36) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  password_hash VARCHAR(255) NOT NULL,
	  role VARCHAR(16) NOT NULL DEFAULT 'admin',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS sessions (
	  id CHAR(36) NOT NULL,
	  user_id CHAR(36) NOT NULL,
	  expires_at DATETIME(3) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  last_seen_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_sessions_user_id (user_id),
	  CONSTRAINT fk_sessions_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if err := db.Exec(sql).Error; err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	fmt.Println("Tables created successfully")
}
