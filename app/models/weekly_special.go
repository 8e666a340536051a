package models

type WeeklySpecial struct {
	ID           int     `json:"id" bson:"id"`
	Name         string  `json:"name" bson:"name"`
	Description  string  `json:"description" bson:"description"`
	Price        Price   `json:"price" bson:"price"`
	Image        *string `json:"image" bson:"image"`
	IsActive     bool    `json:"is_active" bson:"is_active"`
	DisplayOrder int     `json:"display_order" bson:"display_order"`
}
