package models

type Category struct {
	ID           int    `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name"`
	DisplayOrder int    `json:"display_order" bson:"display_order"`
}
