package models

import "time"

// RoleAdmin is the only role issued by this backend; every registered
// account is an administrator.
const RoleAdmin = "ADMIN"

// Admin is a back-office account that can manage events and members.
type Admin struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminPublic is the user object returned by login, without credentials.
type AdminPublic struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// ToPublic converts Admin to AdminPublic. Email and full name fall back to
// empty strings, which is what the frontend expects for older accounts.
func (a *Admin) ToPublic() AdminPublic {
	return AdminPublic{
		Username: a.Username,
		Email:    a.Email,
		FullName: a.FullName,
	}
}
