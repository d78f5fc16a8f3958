package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email already registered")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", strings.ToLower(email)).Error
	return u, err
}

func (r *Repo) Create(ctx context.Context, email, passwordHash, role string) (User, error) {
	u := User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}
