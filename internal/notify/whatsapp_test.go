package notify

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name    string
		mobile  string
		want    string
		wantErr bool
	}{
		{"plain ten digits", "9876543210", "9876543210", false},
		{"formatted with country code", "+91 98765 43210", "9876543210", false},
		{"dashes and spaces", "98765-43210", "9876543210", false},
		{"extra leading digits trimmed", "00919876543210", "9876543210", false},
		{"too short", "12345", "", true},
		{"no digits", "not-a-number", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMobile(tt.mobile)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMobile) {
					t.Errorf("err = %v, want ErrInvalidMobile", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeMobile(%q) failed: %v", tt.mobile, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeMobile(%q) = %q, want %q", tt.mobile, got, tt.want)
			}
		})
	}
}

func TestWhatsAppLink(t *testing.T) {
	link, err := WhatsAppLink("+91 98765 43210", "Hello & welcome")
	if err != nil {
		t.Fatalf("WhatsAppLink failed: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/919876543210?text=") {
		t.Errorf("link = %q, want wa.me/91<ten digits> prefix", link)
	}
	if !strings.Contains(link, "Hello+%26+welcome") {
		t.Errorf("link = %q, message not query-escaped", link)
	}

	if _, err := WhatsAppLink("1234", "hi"); !errors.Is(err, ErrInvalidMobile) {
		t.Errorf("err = %v, want ErrInvalidMobile", err)
	}
}

func TestUPILink(t *testing.T) {
	link := UPILink("chits@upi", 1200, "Month 3 installment")

	if !strings.HasPrefix(link, "upi://pay?pa=chits@upi") {
		t.Errorf("link = %q, want upi://pay prefix with payee", link)
	}
	if !strings.Contains(link, "am=1200") {
		t.Errorf("link = %q, want whole-number amount", link)
	}
	if !strings.Contains(link, "cu=INR") {
		t.Errorf("link = %q, want INR currency", link)
	}
	if !strings.Contains(link, "tn=Month+3+installment") {
		t.Errorf("link = %q, note not query-escaped", link)
	}
}

func TestPaymentReminder(t *testing.T) {
	msg := PaymentReminder("Asha", "Dream Gold", 3, 1200, "https://example.com/?loginToken=abc")

	for _, want := range []string{"Hello Asha", "₹1200", "Month 3", "Dream Gold", "https://example.com/?loginToken=abc"} {
		if !strings.Contains(msg, want) {
			t.Errorf("reminder missing %q:\n%s", want, msg)
		}
	}
}

func TestReceipt(t *testing.T) {
	t.Run("with upcoming dues", func(t *testing.T) {
		msg := Receipt("Dream Gold", 2, 1000, []string{"Month 3: ₹1200", "Month 4: ₹1200"})
		for _, want := range []string{"Payment Received: ₹1000", "Chit: Dream Gold", "Month: 2", "Upcoming Installments:", "Month 3: ₹1200"} {
			if !strings.Contains(msg, want) {
				t.Errorf("receipt missing %q:\n%s", want, msg)
			}
		}
	})

	t.Run("without upcoming dues", func(t *testing.T) {
		msg := Receipt("Dream Gold", 12, 1200, nil)
		if strings.Contains(msg, "Upcoming Installments") {
			t.Error("receipt should omit the upcoming section when there are no dues")
		}
	})
}
