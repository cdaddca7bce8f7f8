package models

// Member is a club member listed on the public members page.
type Member struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}
