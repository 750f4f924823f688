package controllers

import (
	"time"

	"github.com/brightsmile/clinic-booking/db"
	"github.com/brightsmile/clinic-booking/models"
	"github.com/brightsmile/clinic-booking/utils"
	"github.com/gofiber/fiber/v2"
)

// GetAllAppointments returns appointments, optionally filtered by status
// and date range
func GetAllAppointments(c *fiber.Ctx) error {
	query := db.DB.Preload("Service").Preload("Patient")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		date, err := time.ParseInLocation("2006-01-02", from, utils.ClinicLocation())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "from must be in YYYY-MM-DD format",
				Error:   err.Error(),
			})
		}
		query = query.Where("starts_at >= ?", date)
	}
	if to := c.Query("to"); to != "" {
		date, err := time.ParseInLocation("2006-01-02", to, utils.ClinicLocation())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "to must be in YYYY-MM-DD format",
				Error:   err.Error(),
			})
		}
		query = query.Where("starts_at < ?", date.AddDate(0, 0, 1))
	}

	var appointments []models.Appointment
	if err := query.Order("starts_at asc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns an appointment by ID
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Service").Preload("Patient").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// GetMyAppointments returns the authenticated patient's appointments
func GetMyAppointments(c *fiber.Ctx) error {
	patientID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var appointments []models.Appointment
	if err := db.DB.Preload("Service").Where("patient_id = ?", patientID).
		Order("starts_at desc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// UpdateAppointmentStatus moves an appointment through its state machine
// (pending -> confirmed/canceled, confirmed -> completed/canceled)
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	type StatusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}

	id := c.Params("id")
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Service").Preload("Patient").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	return c.JSON(appointment)
}

// CancelMyAppointment lets a patient cancel their own pending or confirmed
// appointment
func CancelMyAppointment(c *fiber.Ctx) error {
	patientID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Where("patient_id = ?", patientID).First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.UpdateStatus(db.DB, models.StatusCanceled); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Appointment can no longer be canceled",
			Error:   err.Error(),
		})
	}

	return c.JSON(appointment)
}

// DeleteAppointment deletes an appointment by ID
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
