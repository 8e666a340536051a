package models

type MenuItem struct {
	ID           int     `json:"id" bson:"id"`
	CategoryID   int     `json:"category_id" bson:"category_id"`
	Name         string  `json:"name" bson:"name"`
	Description  string  `json:"description" bson:"description"`
	Price        Price   `json:"price" bson:"price"`
	Image        *string `json:"image" bson:"image"`
	IsAvailable  bool    `json:"is_available" bson:"is_available"`
	DisplayOrder int     `json:"display_order" bson:"display_order"`
}
