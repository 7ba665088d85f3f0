package CronJobs

import (
	"log"
	"time"

	"MediTrack/Models"

	"github.com/go-co-op/gocron"
)

// Retention window before a soft-deleted patient row is cleared for good.
const purgeRetention = 30 * 24 * time.Hour

// RecordPurger permanently removes patient rows that were deleted through the
// API once their retention window has passed.
type RecordPurger struct{}

func NewRecordPurger() *RecordPurger {
	return &RecordPurger{}
}

// StartPurgeCron starts the daily job that clears expired soft-deleted rows.
func (rp *RecordPurger) StartPurgeCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(24).Hours().Do(func() {
		log.Println("Running deleted patient purge...")
		if err := rp.PurgeExpired(); err != nil {
			log.Printf("Error purging deleted patients: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Deleted patient purge cron job started")

	return scheduler
}

func (rp *RecordPurger) PurgeExpired() error {
	cutoff := time.Now().Add(-purgeRetention)

	purged, err := Models.PurgeDeletedPatients(cutoff)
	if err != nil {
		return err
	}
	if purged > 0 {
		log.Printf("Purged %d deleted patient records", purged)
	}
	return nil
}
