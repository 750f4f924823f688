package models

import (
	"gorm.io/gorm"
)

type ContactMessage struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Handled bool   `json:"handled" gorm:"default:false"`
}
