package models

type Product struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       []string `json:"image"`
	Stock       int      `json:"stock"`
	CategoryID  uint     `json:"category_id"`
}

// FirstImage returns the primary image URL or a placeholder.
func (p *Product) FirstImage() string {
	if len(p.Image) > 0 && p.Image[0] != "" {
		return p.Image[0]
	}
	return "/placeholder.jpg"
}

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
