// Package notify builds the outbound messaging artifacts: WhatsApp deep
// links, UPI payment links, reminder and receipt texts. Delivery itself is
// the caller's concern; everything here is pure formatting.
package notify

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidMobile means the number does not contain a 10-digit mobile
// number after stripping formatting.
var ErrInvalidMobile = errors.New("mobile number must have 10 digits")

const waBaseURL = "https://wa.me"

// countryPrefix is prepended to the 10-digit number, per the wa.me format
// for Indian numbers.
const countryPrefix = "91"

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeMobile reduces a formatted number to its trailing 10 digits.
func NormalizeMobile(mobile string) (string, error) {
	digits := digitsOnly(mobile)
	if len(digits) < 10 {
		return "", fmt.Errorf("%w: %q", ErrInvalidMobile, mobile)
	}
	return digits[len(digits)-10:], nil
}

// WhatsAppLink builds a wa.me deep link that opens a chat with the member
// and the message prefilled.
func WhatsAppLink(mobile, message string) (string, error) {
	ten, err := NormalizeMobile(mobile)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s%s?text=%s", waBaseURL, countryPrefix, ten, url.QueryEscape(message)), nil
}

// UPILink builds a upi:// payment deep link for the given collection ID.
func UPILink(upiID string, amount float64, note string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=GTSChit&am=%g&cu=INR&tn=%s", upiID, amount, url.QueryEscape(note))
}

// PaymentReminder renders the reminder message carrying the member's secure
// ledger link.
func PaymentReminder(name, chitName string, monthNo int, amount float64, magicLink string) string {
	return fmt.Sprintf(`Hello %s,

A payment reminder for ₹%.0f is due for Month %d of the %s chit.

Please click the secure link below to view your details and pay directly:
%s

Thank you,
Chit Fund Manager`, name, amount, monthNo, chitName, magicLink)
}

// Receipt renders the payment confirmation message. upcomingDues lists the
// next installments as preformatted "Month N: ₹X" lines; empty is fine.
func Receipt(chitName string, monthNo int, amount float64, upcomingDues []string) string {
	msg := fmt.Sprintf("Payment Received: ₹%.0f\nChit: %s\nMonth: %d.\n\nThank you for your payment.", amount, chitName, monthNo)
	if len(upcomingDues) > 0 {
		msg += "\n\nUpcoming Installments:\n" + strings.Join(upcomingDues, "\n")
	}
	return msg
}
