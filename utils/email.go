package utils

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

// DonationReceipt carries the fields printed on a donation receipt email.
type DonationReceipt struct {
	DonorName  string
	DonorEmail string
	Amount     int
	PaymentID  string
	DonationID uint
	Program    string
}

// MembershipReceipt carries the fields printed on a membership receipt email.
type MembershipReceipt struct {
	Name         string
	Email        string
	MembershipID string
	Amount       int
	PaymentID    string
	ExpiryDate   time.Time
}

// SendDonationReceipt emails a receipt after a donation payment is verified.
// Failures are logged, not returned.
func SendDonationReceipt(r DonationReceipt) {
	program := strings.ToUpper(strings.ReplaceAll(r.Program, "-", " "))
	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for your donation to the Arni Youth Development Foundation.\n\n"+
			"Amount: ₹%d\nProgram: %s\nPayment ID: %s\nDonation Reference: %d\nDate: %s\n\n"+
			"Your contribution helps us serve our communities.\n\nWarm regards,\nAYDF",
		r.DonorName, r.Amount, program, r.PaymentID, r.DonationID,
		time.Now().Format("02 January 2006"),
	)

	sendMail(r.DonorEmail, "Your AYDF Donation Receipt", body)
}

// SendMembershipReceipt emails a receipt after a membership payment is verified.
func SendMembershipReceipt(r MembershipReceipt) {
	body := fmt.Sprintf(
		"Dear %s,\n\nWelcome to the Arni Youth Development Foundation.\n\n"+
			"Membership ID: %s\nAmount: ₹%d\nPayment ID: %s\nValid Until: %s\n\n"+
			"Warm regards,\nAYDF",
		r.Name, r.MembershipID, r.Amount, r.PaymentID,
		r.ExpiryDate.Format("02 January 2006"),
	)

	sendMail(r.Email, "Your AYDF Membership Receipt", body)
}

func sendMail(to, subject, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		465,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return
	}

	log.Printf("Receipt email sent to %s", to)
}
