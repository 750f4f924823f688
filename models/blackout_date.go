package models

import (
	"time"

	"gorm.io/gorm"
)

// BlackoutDate excludes a whole calendar day from booking. Only the date
// part of Date is meaningful; the time component is ignored everywhere.
type BlackoutDate struct {
	gorm.Model
	Date   time.Time `json:"date"`
	Reason string    `json:"reason"`
}
