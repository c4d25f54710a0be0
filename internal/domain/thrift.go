package domain

import "time"

// Frequency is the contribution cadence of a thrift
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// ThriftStatus is the lifecycle state of a thrift
type ThriftStatus string

const (
	ThriftPending   ThriftStatus = "pending"
	ThriftActive    ThriftStatus = "active"
	ThriftCompleted ThriftStatus = "completed"
	ThriftCancelled ThriftStatus = "cancelled"
)

// Thrift Model
type Thrift struct {
	Model
	UserID         string       `gorm:"size:36;index;not null" json:"userId"`   // Owning user
	Name           string       `gorm:"size:100;not null" json:"name"`          // Plan name
	StartDate      time.Time    `gorm:"not null" json:"startDate"`              // First cycle
	EndDate        *time.Time   `json:"endDate,omitempty"`                      // Optional end
	AmountPerCycle float64      `gorm:"not null" json:"amountPerCycle"`         // Contribution per cycle
	Frequency      Frequency    `gorm:"size:16;not null" json:"frequency"`      // Cadence
	Status         ThriftStatus `gorm:"size:16;not null" json:"status"`         // Lifecycle state
	MaxMembers     *int         `json:"maxMembers,omitempty"`                   // At least 2 when set
	Description    string       `gorm:"size:1000" json:"description,omitempty"` // Free text
	IsPublic       bool         `json:"isPublic"`                               // Visible to non-owners
}
