package user

import "time"

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	GymID        *int      `db:"gym_id" json:"gym_id,omitempty"`
	GymName      *string   `db:"gym_name" json:"gym_name,omitempty"`
	GymActive    *bool     `db:"gym_active" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// TenantID returns the gym the user owns, or 0.
func (u *User) TenantID() int {
	if u.GymID == nil {
		return 0
	}
	return *u.GymID
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
