package controllers

import (
	"time"

	"github.com/brightsmile/clinic-booking/db"
	"github.com/brightsmile/clinic-booking/models"
	"github.com/gofiber/fiber/v2"
)

// GetDashboardOverview returns the admin reporting snapshot: appointment
// counts by status, revenue from completed appointments and the unhandled
// contact-message backlog
func GetDashboardOverview(c *fiber.Ctx) error {
	var statistics struct {
		TotalAppointments int64     `json:"total_appointments"`
		PendingCount      int64     `json:"pending_count"`
		ConfirmedCount    int64     `json:"confirmed_count"`
		CompletedCount    int64     `json:"completed_count"`
		CanceledCount     int64     `json:"canceled_count"`
		TotalServices     int64     `json:"total_services"`
		TotalRevenue      float64   `json:"total_revenue"`
		UnhandledMessages int64     `json:"unhandled_messages"`
		LastUpdated       time.Time `json:"last_updated"`
	}

	appointmentQuery := db.DB.Model(&models.Appointment{})
	appointmentQuery.Count(&statistics.TotalAppointments)

	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusPending).Count(&statistics.PendingCount)
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusConfirmed).Count(&statistics.ConfirmedCount)
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusCompleted).Count(&statistics.CompletedCount)
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusCanceled).Count(&statistics.CanceledCount)

	db.DB.Model(&models.Service{}).Count(&statistics.TotalServices)
	db.DB.Model(&models.ContactMessage{}).Where("handled = ?", false).Count(&statistics.UnhandledMessages)

	// Revenue comes from completed appointments priced at their service
	type RevenueResult struct {
		TotalRevenue float64
	}
	var revenueResult RevenueResult
	db.DB.Table("appointments").
		Select("COALESCE(SUM(services.price), 0) as total_revenue").
		Joins("JOIN services ON appointments.service_id = services.id").
		Where("appointments.status = ?", models.StatusCompleted).
		Scan(&revenueResult)
	statistics.TotalRevenue = revenueResult.TotalRevenue

	statistics.LastUpdated = time.Now()

	// Next few upcoming appointments for the front desk
	var upcoming []models.Appointment
	db.DB.Preload("Service").Preload("Patient").
		Where("status IN ? AND starts_at > ?", []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}, time.Now()).
		Order("starts_at asc").Limit(10).Find(&upcoming)

	return c.JSON(fiber.Map{
		"statistics": statistics,
		"upcoming":   upcoming,
	})
}
