package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

// List returns every product in id-ascending order, the order the
// storefront grid renders them in.
func (r *GormRepo) List(ctx context.Context) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].normalize()
	}
	return items, nil
}

func (r *GormRepo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return Product{}, err
	}
	p.normalize()
	return p, nil
}

func (r *GormRepo) Insert(ctx context.Context, name, price, description string, images []string) (Product, error) {
	p := Product{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       price,
		Description: description,
		Images:      images,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *GormRepo) Update(ctx context.Context, id, name, price, description string, images []string) error {
	// Struct-based update so the images slice goes through the JSON
	// serializer; Select forces empty strings to be written too.
	return r.db.WithContext(ctx).Model(&Product{ID: id}).
		Select("name", "price", "description", "images", "updated_at").
		Updates(Product{
			Name:        name,
			Price:       price,
			Description: description,
			Images:      images,
			UpdatedAt:   time.Now(),
		}).Error
}

func (r *GormRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id).Error
}
