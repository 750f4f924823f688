package controllers

import (
	"time"

	"github.com/brightsmile/clinic-booking/db"
	"github.com/brightsmile/clinic-booking/models"
	"github.com/brightsmile/clinic-booking/utils"
	"github.com/gofiber/fiber/v2"
)

// GetAllBlackoutDates returns all blackout dates
func GetAllBlackoutDates(c *fiber.Ctx) error {
	var blackouts []models.BlackoutDate
	if err := db.DB.Order("date asc").Find(&blackouts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch blackout dates",
			Error:   err.Error(),
		})
	}
	return c.JSON(blackouts)
}

// CreateBlackoutDate creates a new blackout date
func CreateBlackoutDate(c *fiber.Ctx) error {
	type BlackoutInput struct {
		Date   string `json:"date"` // "2006-01-02"
		Reason string `json:"reason"`
	}

	input := new(BlackoutInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// Parse in the clinic timezone so the blackout lands on the intended
	// calendar day, not the UTC one.
	date, err := time.ParseInLocation("2006-01-02", input.Date, utils.ClinicLocation())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Date must be in YYYY-MM-DD format",
			Error:   err.Error(),
		})
	}

	blackout := models.BlackoutDate{Date: date, Reason: input.Reason}
	if err := db.DB.Create(&blackout).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create blackout date",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(blackout)
}

// DeleteBlackoutDate deletes a blackout date by ID
func DeleteBlackoutDate(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.BlackoutDate{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete blackout date",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
