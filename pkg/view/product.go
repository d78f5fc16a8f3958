package view

// ProductCard is one tile in the storefront grid.
type ProductCard struct {
	ID       string
	Name     string
	Price    string
	ImageURL string
	OrderURL string
}

type HomePage struct {
	Title    string
	Query    string
	Products []ProductCard
	Flash    *Flash
}

// Thumb is one thumbnail under the gallery's main image.
type Thumb struct {
	URL    string
	Href   string
	Active bool
}

type ProductPage struct {
	Title       string
	ID          string
	Name        string
	Price       string
	Description string
	MainImage   string
	PrevHref    string
	NextHref    string
	Thumbs      []Thumb
	OrderURL    string
	Flash       *Flash
}
