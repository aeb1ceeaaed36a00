package utils

import (
	"campapi/config"
	"campapi/database"
	"campapi/models"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeReviewScheduler sets up the pending-class digest scheduler
func InitializeReviewScheduler() {
	if config.AppConfig.AdminDigestEmail == "" {
		log.Println("[REVIEW-SCHEDULER] No ADMIN_DIGEST_EMAIL configured, digest disabled")
		return
	}

	c := cron.New()

	// Run daily at 9 AM to remind admins about classes awaiting review
	c.AddFunc("0 9 * * *", func() {
		log.Println("[REVIEW-SCHEDULER] Running daily pending-class check...")
		SendPendingDigest()
	})

	c.Start()
	log.Println("[REVIEW-SCHEDULER] Review scheduler started - runs daily at 9 AM")
}

// SendPendingDigest mails the configured admin the list of pending classes
func SendPendingDigest() {
	db := database.Database.Db

	var pending []models.Class
	if err := db.Where("status = ?", models.ClassPending).Order("id asc").Find(&pending).Error; err != nil {
		log.Printf("[REVIEW-SCHEDULER] Error fetching pending classes: %v", err)
		return
	}

	if len(pending) == 0 {
		log.Println("[REVIEW-SCHEDULER] No pending classes, skipping digest")
		return
	}

	titles := make([]string, 0, len(pending))
	for _, class := range pending {
		titles = append(titles, class.Title)
	}

	if err := SendPendingClassDigest(config.AppConfig.AdminDigestEmail, titles); err != nil {
		log.Printf("[REVIEW-SCHEDULER] Error sending digest: %v", err)
		return
	}

	log.Printf("[REVIEW-SCHEDULER] Digest sent for %d pending class(es)", len(pending))
}
