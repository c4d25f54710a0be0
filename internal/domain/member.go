package domain

// Member is a person taking part in a user's thrift groups. Members do not log in.
type Member struct {
	Model
	UserID  string `gorm:"size:36;index;not null" json:"userId"` // Owning user
	Name    string `gorm:"size:100;not null" json:"name"`        // Member name
	Phone   string `gorm:"size:32" json:"phone,omitempty"`       // Optional phone
	Address string `gorm:"size:255" json:"address,omitempty"`    // Optional address
}
