package cron

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gislain231/greenshare/db"
	"github.com/gislain231/greenshare/models"
	"github.com/gislain231/greenshare/utils"
)

var sendMail = utils.SendEmail

// ApprovalDelay returns how long a provider registration waits before
// the worker approves it. The delay stands in for the admin review
// window until a real review flow exists.
func ApprovalDelay() time.Duration {
	if v := os.Getenv("PROVIDER_APPROVAL_DELAY"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return 2 * time.Minute
}

// StartCronJobs initializes and starts the scheduler for provider
// approvals and booking reminders.
func StartCronJobs() {
	c := cron.New()

	_, err := c.AddFunc("* * * * *", func() {
		ApprovePendingProviders(ApprovalDelay())
	})
	if err != nil {
		log.Fatalf("Failed to add approval cron job: %v", err)
	}

	_, err = c.AddFunc("0 * * * *", SendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add reminder cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started for approvals and reminders")
}

// ApprovePendingProviders approves every business whose registration
// has aged past the delay. Only the matching records are touched.
func ApprovePendingProviders(delay time.Duration) {
	cutoff := time.Now().Add(-delay)

	var pending []models.BusinessDetails
	err := db.DB.
		Where("approved = ? AND created_at <= ?", false, cutoff).
		Find(&pending).Error
	if err != nil {
		log.Printf("Error fetching pending providers: %v", err)
		return
	}

	for _, business := range pending {
		now := time.Now()
		err := db.DB.Model(&business).
			Updates(map[string]interface{}{"approved": true, "approved_at": now}).Error
		if err != nil {
			log.Printf("Failed to approve provider %d: %v", business.ProviderID, err)
			continue
		}
		log.Printf("Approved provider business %q (%s)", business.BusinessName, business.Email)

		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your business has been approved. You can now log in and set up your services.</p>
			<p>Best regards,</p>
			<p>The GreenShare Team</p>
		`, business.BusinessName)
		if err := sendMail(business.Email, "Your GreenShare business is approved", body); err != nil {
			log.Printf("Failed to send approval email to %s: %v", business.Email, err)
		}
	}
}

// SendBookingReminders mails customers whose service date is tomorrow.
func SendBookingReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var bookings []models.Booking
	err := db.DB.
		Where("status = ? AND service_date = ?", models.BookingConfirmed, tomorrow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>This is a reminder for your upcoming booking tomorrow.</p>
			<p><strong>Details:</strong></p>
			<ul>
				<li><strong>Booking ID:</strong> %s</li>
				<li><strong>Provider:</strong> %s</li>
				<li><strong>Service:</strong> %s</li>
				<li><strong>Date:</strong> %s</li>
			</ul>
			<p>Best regards,</p>
			<p>The GreenShare Team</p>
		`, booking.FullName, booking.BookingID, booking.Provider, booking.Service, booking.ServiceDate)

		if err := sendMail(booking.Email, "Reminder: Upcoming Booking - GreenShare", body); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.BookingID, err)
			continue
		}
		log.Printf("Sent reminder for booking %s to %s", booking.BookingID, booking.Email)
	}
}
