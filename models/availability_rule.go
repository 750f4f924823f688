package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// AvailabilityRule is a recurring weekly booking window. A nil ServiceID
// means the rule applies to every service.
type AvailabilityRule struct {
	gorm.Model
	Weekday     DayOfWeek `json:"weekday"`    // 0 = Sunday ... 6 = Saturday
	StartTime   string    `json:"start_time"` // Format "HH:MM" in 24h
	EndTime     string    `json:"end_time"`   // Format "HH:MM" in 24h
	ServiceID   *uint     `json:"service_id"`
	Service     *Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	CreatedByID uint      `json:"created_by_id"`
}
