package auth

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;type:char(36)"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null;default:admin"`
	CreatedAt    time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt    time.Time `gorm:"type:datetime(3);not null"`
}

func (User) TableName() string { return "users" }
