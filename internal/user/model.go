package user

// User is a single credential-store row. Password holds the bcrypt hash and
// is never serialized in responses.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
}
