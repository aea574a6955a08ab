package notifications

import (
	"fmt"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
)

const bookingDateLayout = "Monday, 02 January 2006 15:04 MST"

type letter struct {
	subject string
	body    string
}

func serviceTitle(b *domain.Booking) string {
	if b.ServiceTitle == "" {
		return "Service"
	}
	return b.ServiceTitle
}

func formatDate(b *domain.Booking, loc *time.Location) string {
	return b.BookingDate.In(loc).Format(bookingDateLayout)
}

func confirmationLetter(b *domain.Booking, loc *time.Location) letter {
	title := serviceTitle(b)
	return letter{
		subject: "Booking Confirmation - " + title,
		body: fmt.Sprintf("Your booking has been received!\n\nService: %s\nDate: %s\nStatus: %s\n\nThank you for your booking!",
			title, formatDate(b, loc), b.Status),
	}
}

func newBookingLetter(b *domain.Booking, customerName string, loc *time.Location) letter {
	title := serviceTitle(b)
	if customerName == "" {
		customerName = "Customer"
	}
	body := fmt.Sprintf("You have a new booking!\n\nService: %s\nCustomer: %s\nDate: %s\nStatus: %s",
		title, customerName, formatDate(b, loc), b.Status)
	if b.CustomerPhone != nil && *b.CustomerPhone != "" {
		body += "\nPhone: " + *b.CustomerPhone
	}
	if b.Notes != nil && *b.Notes != "" {
		body += "\nNotes: " + *b.Notes
	}
	return letter{subject: "New Booking - " + title, body: body}
}

func statusUpdateLetter(b *domain.Booking, oldStatus, newStatus domain.BookingStatus, loc *time.Location) letter {
	title := serviceTitle(b)
	return letter{
		subject: "Booking Update - " + title,
		body: fmt.Sprintf("Your booking status has been updated!\n\nService: %s\nDate: %s\nPrevious Status: %s\nNew Status: %s",
			title, formatDate(b, loc), oldStatus, newStatus),
	}
}

func reminderLetter(b *domain.Booking, loc *time.Location) letter {
	title := serviceTitle(b)
	return letter{
		subject: "Reminder: Upcoming Booking - " + title,
		body: fmt.Sprintf("This is a reminder about your upcoming booking.\n\nService: %s\nDate: %s\n\nWe look forward to seeing you!",
			title, formatDate(b, loc)),
	}
}
