package models

// Admin is a singleton credential record. Password holds a bcrypt hash.
type Admin struct {
	Username string `json:"username" bson:"username"`
	Password string `json:"password" bson:"password"`
}
