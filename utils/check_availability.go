package utils

import (
	"time"

	"github.com/brightsmile/clinic-booking/models"
	"gorm.io/gorm"
)

// HasConflict reports whether any non-canceled appointment overlaps
// [startsAt, startsAt+duration). The slot generator output is advisory only;
// this runs inside the booking transaction and locks conflicting rows, which
// makes the write path the final arbiter when two requests race for the
// same slot.
func HasConflict(tx *gorm.DB, startsAt time.Time, duration time.Duration) (bool, error) {
	endsAt := startsAt.Add(duration)

	var existing models.Appointment
	err := tx.Raw(`
		SELECT *
		FROM appointments
		WHERE status <> ?
		  AND deleted_at IS NULL
		  AND starts_at < ? AND ends_at > ?
		FOR UPDATE
		LIMIT 1
	`, models.StatusCanceled, endsAt, startsAt).
		Scan(&existing).Error
	if err != nil {
		return false, err
	}

	return existing.ID != 0, nil
}
