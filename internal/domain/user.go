package domain

// User — административная учетная запись.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt
}
