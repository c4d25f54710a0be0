package domain

// Activity is an append-only audit entry shown on the dashboard feed
type Activity struct {
	Model
	UserID string `gorm:"size:36;index;not null" json:"userId"` // Owning user
	Action string `gorm:"size:500;not null" json:"action"`      // Human readable description
	Time   string `gorm:"size:32;not null" json:"time"`         // Display time, e.g. "3:04 PM"
	Icon   string `gorm:"size:16;not null" json:"icon"`         // Feed icon
}
