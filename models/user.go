package models

import (
	"time"
)

type User struct {
	ID           uint               `json:"id" gorm:"primaryKey"`
	Name         string             `json:"name"`
	Email        string             `json:"email" gorm:"unique"`
	Phone        string             `json:"phone"`
	Password     string             `json:"password,omitempty"`
	IsVerified   bool               `json:"is_verified"`
	OTP          string             `json:"otp,omitempty"`
	OTPExpiresAt time.Time          `json:"otp_expires_at,omitempty"`
	RoleID       uint               `json:"role_id"`
	Role         Role               `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Appointments []Appointment      `json:"appointments,omitempty" gorm:"foreignKey:PatientID"`
	Rules        []AvailabilityRule `json:"rules,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
