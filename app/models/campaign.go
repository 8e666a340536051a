package models

import "time"

// Campaign announces a limited-time offer. Discount is a display string
// derived from the old/new price pair at write time; it is null when either
// side of the pair is missing.
type Campaign struct {
	ID          int        `json:"id" bson:"id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Discount    *string    `json:"discount" bson:"discount"`
	Image       *string    `json:"image" bson:"image"`
	IsActive    bool       `json:"is_active" bson:"is_active"`
	StartDate   *time.Time `json:"start_date" bson:"start_date"`
	EndDate     *time.Time `json:"end_date" bson:"end_date"`
}
