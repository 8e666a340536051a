package models

// CategoryMenu joins a category with its ordered items.
type CategoryMenu struct {
	Category Category
	Items    []MenuItem
}

// Catalog is the assembled view consumed by the public menu page and the
// admin dashboard.
type Catalog struct {
	Menu           []CategoryMenu
	WeeklySpecials []WeeklySpecial
	Campaigns      []Campaign
	InstagramPosts []InstagramPost
}
