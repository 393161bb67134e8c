package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testKey = "unit-test-key"

func TestTokenRoundTrip(t *testing.T) {
	original := PortalToken{
		MemberID:  "mem-123",
		Secret:    "3210",
		ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
	}

	opaque := EncodeToken(original, testKey)
	if strings.ContainsAny(opaque, "+/=") {
		t.Errorf("token %q is not URL-safe", opaque)
	}

	decoded, err := DecodeToken(opaque, testKey)
	if err != nil {
		t.Fatalf("DecodeToken failed: %v", err)
	}
	if decoded != original {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	tests := []struct {
		name   string
		opaque string
		key    string
	}{
		{"not base64", "!!!not-base64!!!", testKey},
		{"wrong key", EncodeToken(PortalToken{MemberID: "m1"}, testKey), "other-key"},
		{"empty member id", EncodeToken(PortalToken{Secret: "1234"}, testKey), testKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeToken(tt.opaque, tt.key); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	now := time.Now()
	token := PortalToken{MemberID: "m1", ExpiresAt: now.UnixMilli()}

	if token.Expired(now.Add(-time.Second)) {
		t.Error("token should still be valid before the expiry instant")
	}
	if !token.Expired(now) {
		t.Error("token should be expired at the expiry instant")
	}
	if !token.Expired(now.Add(time.Second)) {
		t.Error("token should be expired after the expiry instant")
	}
}

func TestMagicLink(t *testing.T) {
	link := MagicLink("https://chits.example.com", "mem-1", "+91 98765 43210", testKey)

	prefix := "https://chits.example.com/?loginToken="
	if !strings.HasPrefix(link, prefix) {
		t.Fatalf("link = %q, want prefix %q", link, prefix)
	}

	decoded, err := DecodeToken(strings.TrimPrefix(link, prefix), testKey)
	if err != nil {
		t.Fatalf("embedded token invalid: %v", err)
	}
	if decoded.MemberID != "mem-1" {
		t.Errorf("MemberID = %q, want mem-1", decoded.MemberID)
	}
	if decoded.Secret != "3210" {
		t.Errorf("Secret = %q, want last four digits 3210", decoded.Secret)
	}
	if decoded.Expired(time.Now()) {
		t.Error("fresh link should not be expired")
	}
	if decoded.Expired(time.Now().Add(MagicLinkValidity - time.Minute)) {
		t.Error("link should last the full validity window")
	}
}
