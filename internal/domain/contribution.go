package domain

import "time"

// ContributionStatus is the payment state of a contribution
type ContributionStatus string

const (
	ContributionPending  ContributionStatus = "Pending"
	ContributionPaid     ContributionStatus = "Paid"
	ContributionOverdue  ContributionStatus = "Overdue"
	ContributionRefunded ContributionStatus = "Refunded"
)

// Contribution is one payment by a member toward a thrift
type Contribution struct {
	Model
	UserID         string             `gorm:"size:36;index;not null" json:"userId"`                    // User who recorded it
	MemberID       string             `gorm:"size:36;index;not null" json:"memberId"`                  // Paying member
	ThriftID       string             `gorm:"size:36;index;not null" json:"thriftId"`                  // Target thrift
	Amount         float64            `gorm:"not null" json:"amount"`                                  // Never negative
	Date           time.Time          `gorm:"not null" json:"date"`                                    // Payment date
	Status         ContributionStatus `gorm:"size:16;not null" json:"status"`                          // Payment state
	TransactionRef string             `gorm:"size:64;uniqueIndex" json:"transactionRef"`               // Generated reference
	Member         *MemberRef         `gorm:"-:migration;foreignKey:MemberID" json:"member,omitempty"` // Preloaded name
	Thrift         *ThriftRef         `gorm:"-:migration;foreignKey:ThriftID" json:"thrift,omitempty"` // Preloaded name
}

// MemberRef is the slice of Member preloaded into contribution listings
type MemberRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// TableName maps MemberRef onto the members table
func (MemberRef) TableName() string { return "members" }

// ThriftRef is the slice of Thrift preloaded into contribution listings
type ThriftRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// TableName maps ThriftRef onto the thrifts table
func (ThriftRef) TableName() string { return "thrifts" }
