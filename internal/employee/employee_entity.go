package employee

import "time"

// Employee is the persisted record. ID is assigned by the database on first
// save and never changes afterwards.
type Employee struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Name      string
	Role      string
	Email     string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
