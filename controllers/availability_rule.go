package controllers

import (
	"github.com/brightsmile/clinic-booking/db"
	"github.com/brightsmile/clinic-booking/models"
	"github.com/brightsmile/clinic-booking/scheduler"
	"github.com/brightsmile/clinic-booking/utils"
	"github.com/gofiber/fiber/v2"
)

// validateRule rejects malformed rules at write time so the slot generator
// can assume well-formed "HH:MM" windows.
func validateRule(rule *models.AvailabilityRule) string {
	if rule.Weekday < models.Sunday || rule.Weekday > models.Saturday {
		return "Weekday must be between 0 (Sunday) and 6 (Saturday)"
	}
	start, err := scheduler.ParseTimeOfDay(rule.StartTime)
	if err != nil {
		return "Start time must be in HH:MM 24h format"
	}
	end, err := scheduler.ParseTimeOfDay(rule.EndTime)
	if err != nil {
		return "End time must be in HH:MM 24h format"
	}
	if start.Hour > end.Hour || (start.Hour == end.Hour && start.Minute >= end.Minute) {
		return "Start time must be before end time"
	}
	return ""
}

// GetAllAvailabilityRules returns all weekly availability rules
func GetAllAvailabilityRules(c *fiber.Ctx) error {
	var rules []models.AvailabilityRule
	if err := db.DB.Preload("Service").Find(&rules).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability rules",
			Error:   err.Error(),
		})
	}
	return c.JSON(rules)
}

// GetAvailabilityRule returns a rule by ID
func GetAvailabilityRule(c *fiber.Ctx) error {
	id := c.Params("id")
	var rule models.AvailabilityRule
	if err := db.DB.Preload("Service").First(&rule, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Availability rule not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(rule)
}

// CreateAvailabilityRule creates a new weekly availability rule
func CreateAvailabilityRule(c *fiber.Ctx) error {
	rule := new(models.AvailabilityRule)
	if err := c.BodyParser(rule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if msg := validateRule(rule); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: msg,
		})
	}
	if userID, ok := c.Locals("userID").(uint); ok {
		rule.CreatedByID = userID
	}
	if err := db.DB.Create(rule).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create availability rule",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(rule)
}

// UpdateAvailabilityRule updates an existing rule
func UpdateAvailabilityRule(c *fiber.Ctx) error {
	id := c.Params("id")
	var rule models.AvailabilityRule
	if err := db.DB.First(&rule, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Availability rule not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&rule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if msg := validateRule(&rule); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: msg,
		})
	}
	if err := db.DB.Save(&rule).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update availability rule",
			Error:   err.Error(),
		})
	}
	return c.JSON(rule)
}

// DeleteAvailabilityRule deletes a rule by ID
func DeleteAvailabilityRule(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.AvailabilityRule{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete availability rule",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
