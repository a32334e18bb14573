package models

import "time"

// UserProfile is the merged identity view returned to clients: the account
// row plus display fields. Never includes the password hash.
type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
