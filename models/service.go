package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"` // Appointment length in minutes
	Price       float64 `json:"price"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
}
