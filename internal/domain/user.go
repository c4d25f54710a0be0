package domain

// User Model
type User struct {
	Model
	Name     string `gorm:"size:100;not null" json:"name"`              // Display name
	Email    string `gorm:"size:191;uniqueIndex;not null" json:"email"` // Unique, stored lower-cased
	Password string `gorm:"size:255;not null" json:"-"`                 // bcrypt hash
}

// PublicUser is the user view returned by the API
type PublicUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips the password hash
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
