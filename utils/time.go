package utils

import (
	"log"
	"os"
	"sync"
	"time"
)

var (
	clinicLoc  *time.Location
	clinicOnce sync.Once
)

// ClinicLocation returns the clinic's wall-clock timezone. All date
// construction and comparison in the booking flow happens in this location.
func ClinicLocation() *time.Location {
	clinicOnce.Do(func() {
		name := os.Getenv("CLINIC_TIMEZONE")
		if name == "" {
			name = "Europe/Berlin"
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("Unknown CLINIC_TIMEZONE %q, falling back to local time", name)
			loc = time.Local
		}
		clinicLoc = loc
	})
	return clinicLoc
}

// ToClinicTime converts a timestamp into the clinic timezone.
func ToClinicTime(t time.Time) time.Time {
	return t.In(ClinicLocation())
}
