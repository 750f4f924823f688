package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/brightsmile/clinic-booking/db"
	"github.com/brightsmile/clinic-booking/models"
	"github.com/brightsmile/clinic-booking/scheduler"
	"github.com/brightsmile/clinic-booking/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Clock supplies "now" to the booking handlers. Tests swap it for a fixed
// clock instead of relying on the wall clock.
var Clock scheduler.Clock = scheduler.SystemClock{}

const maxRangeDays = 31

// loadGeneratorInputs fetches the rules, blackouts and bookings that feed
// the slot generator for the given service and date range.
func loadGeneratorInputs(serviceID uint, from, to time.Time) ([]scheduler.RuleWindow, []time.Time, []scheduler.Booking, error) {
	var rules []models.AvailabilityRule
	if err := db.DB.Where("service_id IS NULL OR service_id = ?", serviceID).Find(&rules).Error; err != nil {
		return nil, nil, nil, err
	}

	windows := make([]scheduler.RuleWindow, 0, len(rules))
	for _, rule := range rules {
		w, err := scheduler.NewRuleWindow(int(rule.Weekday), rule.StartTime, rule.EndTime)
		if err != nil {
			// Rules are validated at write time; a malformed row means bad
			// legacy data. Skip it rather than taking availability down.
			log.Printf("Skipping malformed availability rule %d: %v", rule.ID, err)
			continue
		}
		windows = append(windows, w)
	}

	var blackoutRows []models.BlackoutDate
	if err := db.DB.Where("date >= ? AND date < ?", from.AddDate(0, 0, -1), to.AddDate(0, 0, 2)).
		Find(&blackoutRows).Error; err != nil {
		return nil, nil, nil, err
	}
	blackouts := make([]time.Time, 0, len(blackoutRows))
	for _, b := range blackoutRows {
		blackouts = append(blackouts, b.Date)
	}

	var appointments []models.Appointment
	if err := db.DB.Where("status <> ? AND starts_at < ? AND ends_at > ?",
		models.StatusCanceled, to.AddDate(0, 0, 1), from).
		Find(&appointments).Error; err != nil {
		return nil, nil, nil, err
	}
	booked := make([]scheduler.Booking, 0, len(appointments))
	for _, a := range appointments {
		booked = append(booked, scheduler.Booking{StartsAt: a.StartsAt, EndsAt: a.EndsAt})
	}

	return windows, blackouts, booked, nil
}

// GetAvailability returns the bookable slots per day for a service over a
// date range (defaults to the next seven days). Availability changes with
// every booking, so the response must never be cached.
func GetAvailability(c *fiber.Ctx) error {
	serviceID := c.QueryInt("service_id")
	if serviceID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing or invalid service_id",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	if service.DurationMin <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Service has no valid duration configured",
		})
	}

	loc := utils.ClinicLocation()
	now := Clock.Now().In(loc)

	from := scheduler.StartOfDay(now)
	if q := c.Query("from"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "from must be in YYYY-MM-DD format",
				Error:   err.Error(),
			})
		}
		from = parsed
	}
	to := from.AddDate(0, 0, 6)
	if q := c.Query("to"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "to must be in YYYY-MM-DD format",
				Error:   err.Error(),
			})
		}
		to = parsed
	}
	if to.Before(from) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "to must not be before from",
		})
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: fmt.Sprintf("Date range is limited to %d days", maxRangeDays),
		})
	}

	windows, blackouts, booked, err := loadGeneratorInputs(uint(serviceID), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load availability data",
			Error:   err.Error(),
		})
	}

	byDay := scheduler.RangeSlots(from, to, service.DurationMin, windows, blackouts, booked, now, scheduler.DefaultOptions())

	days := make(map[string][]string, len(byDay))
	for day, slots := range byDay {
		formatted := make([]string, 0, len(slots))
		for _, s := range slots {
			formatted = append(formatted, s.Format(time.RFC3339))
		}
		days[day] = formatted
	}

	// Slot availability goes stale the moment anyone books.
	c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate")
	c.Set("Pragma", "no-cache")

	return c.JSON(fiber.Map{
		"service_id":   service.ID,
		"duration_min": service.DurationMin,
		"days":         days,
	})
}

// BookAppointment books a slot for the authenticated patient. The chosen
// start is re-validated against the generator and then checked once more
// inside the transaction, which is the final conflict arbiter.
func BookAppointment(c *fiber.Ctx) error {
	type BookingInput struct {
		ServiceID uint   `json:"service_id"`
		StartsAt  string `json:"starts_at"` // RFC 3339
		Notes     string `json:"notes"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	patientID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	if service.DurationMin <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Service has no valid duration configured",
		})
	}

	startsAt, err := time.Parse(time.RFC3339, input.StartsAt)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "starts_at must be an RFC 3339 timestamp",
			Error:   err.Error(),
		})
	}
	loc := utils.ClinicLocation()
	startsAt = startsAt.In(loc)
	now := Clock.Now().In(loc)

	windows, blackouts, booked, err := loadGeneratorInputs(service.ID, startsAt, startsAt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load availability data",
			Error:   err.Error(),
		})
	}

	// The requested start must be one of the slots the generator would
	// offer right now: inside a window, past the buffer, off blackout days
	// and clear of current bookings.
	offered := scheduler.DailySlots(startsAt, service.DurationMin, windows, blackouts, booked, now, scheduler.DefaultOptions())
	valid := false
	for _, s := range offered {
		if s.Equal(startsAt) {
			valid = true
			break
		}
	}
	if !valid || scheduler.StartOfDay(startsAt).Before(scheduler.StartOfDay(now)) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Requested time slot is not available",
		})
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	appointment := models.Appointment{
		Reference: utils.GenerateReference(),
		StartsAt:  startsAt,
		EndsAt:    startsAt.Add(duration),
		Status:    models.StatusPending,
		Notes:     input.Notes,
		ServiceID: service.ID,
		PatientID: patientID,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Re-check inside the transaction; the FOR UPDATE lock serializes
		// racing bookings for the same slot.
		conflict, err := utils.HasConflict(tx, startsAt, duration)
		if err != nil {
			return err
		}
		if conflict {
			return fmt.Errorf("time slot not available")
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available or failed to create appointment",
			Error:   err.Error(),
		})
	}

	var patient models.User
	if err := db.DB.First(&patient, patientID).Error; err == nil {
		go sendBookingConfirmation(&appointment, &service, &patient)
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

func sendBookingConfirmation(appointment *models.Appointment, service *models.Service, patient *models.User) {
	subject := fmt.Sprintf("Appointment Confirmation - %s", service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment request has been received.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Reference:</strong> %s</li>
			<li><strong>Treatment:</strong> %s</li>
			<li><strong>Start:</strong> %s</li>
			<li><strong>End:</strong> %s</li>
		</ul>
		<p>We will confirm your appointment shortly. If you need to reschedule or cancel, please contact the clinic.</p>
		<p>Best regards,</p>
		<p>Your Dental Clinic Team</p>
	`, patient.Name, appointment.Reference, service.Name,
		appointment.StartsAt.Format("2006-01-02 15:04"),
		appointment.EndsAt.Format("2006-01-02 15:04"))

	if err := utils.SendEmail(patient.Email, subject, body); err != nil {
		log.Printf("Failed to send booking confirmation for %s: %v", appointment.Reference, err)
	}
}
