package controllers

import (
	"fmt"
	"log"

	"github.com/brightsmile/clinic-booking/db"
	"github.com/brightsmile/clinic-booking/models"
	"github.com/brightsmile/clinic-booking/utils"
	"github.com/gofiber/fiber/v2"
)

// CreateContactMessage stores a message from the public contact form and
// notifies the clinic inbox
func CreateContactMessage(c *fiber.Ctx) error {
	message := new(models.ContactMessage)
	if err := c.BodyParser(message); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if message.Name == "" || message.Email == "" || message.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name, email and message are required",
		})
	}
	message.Handled = false

	if err := db.DB.Create(message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save message",
			Error:   err.Error(),
		})
	}

	go notifyClinic(message)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thank you for your message. We will get back to you shortly.",
	})
}

func notifyClinic(message *models.ContactMessage) {
	body := fmt.Sprintf(`
		<p>New contact form message:</p>
		<ul>
			<li><strong>Name:</strong> %s</li>
			<li><strong>Email:</strong> %s</li>
			<li><strong>Phone:</strong> %s</li>
		</ul>
		<p>%s</p>
	`, message.Name, message.Email, message.Phone, message.Message)

	if err := utils.SendEmail(utils.ClinicEmail(), "New Contact Form Message", body); err != nil {
		log.Printf("Failed to forward contact message %d: %v", message.ID, err)
	}
}

// GetContactMessages returns contact messages, unhandled first
func GetContactMessages(c *fiber.Ctx) error {
	query := db.DB.Order("handled asc, created_at desc")
	if c.Query("unhandled") == "true" {
		query = query.Where("handled = ?", false)
	}

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch contact messages",
			Error:   err.Error(),
		})
	}
	return c.JSON(messages)
}

// MarkContactMessageHandled flags a message as dealt with
func MarkContactMessageHandled(c *fiber.Ctx) error {
	id := c.Params("id")
	var message models.ContactMessage
	if err := db.DB.First(&message, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Message not found",
			Error:   err.Error(),
		})
	}

	message.Handled = true
	if err := db.DB.Save(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update message",
			Error:   err.Error(),
		})
	}
	return c.JSON(message)
}
