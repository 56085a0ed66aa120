package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered shop account. The password is stored and compared
// in plaintext, matching the demo credential model of the storefront.
type User struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the single current-user pointer. It carries a copy of the
// user's identity, not a token.
type Session struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}
