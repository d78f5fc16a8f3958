package catalog

import "time"

// Product is a row in the hosted products table. Price is a display
// string shown verbatim (the shop writes things like "₹499" or "$29.99");
// it carries no numeric semantics anywhere in this codebase.
type Product struct {
	ID          string    `gorm:"primaryKey;type:char(36)"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Price       string    `gorm:"type:varchar(64);not null"`
	Description string    `gorm:"type:text"`
	Images      []string  `gorm:"serializer:json;type:json"`
	LegacyImage *string   `gorm:"column:image;type:varchar(1024)"`
	CreatedAt   time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt   time.Time `gorm:"type:datetime(3);not null"`
}

func (Product) TableName() string { return "products" }

// normalize folds the legacy single-image column into Images so that
// nothing downstream has to know the old schema existed. Rows written
// before the gallery migration have image set and images empty.
func (p *Product) normalize() {
	if len(p.Images) == 0 && p.LegacyImage != nil && *p.LegacyImage != "" {
		p.Images = []string{*p.LegacyImage}
	}
}

// FirstImage is what card-style listings show.
func (p Product) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
