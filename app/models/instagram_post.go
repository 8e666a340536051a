package models

// InstagramPost display orders are kept dense: after any deletion the
// remaining posts are renumbered to 0..n-1.
type InstagramPost struct {
	ID           int     `json:"id" bson:"id"`
	Image        *string `json:"image" bson:"image"`
	Caption      string  `json:"caption" bson:"caption"`
	DisplayOrder int     `json:"display_order" bson:"display_order"`
}
