package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// PortalToken is the payload of a member self-service magic link. The
// encoding is obfuscation, not encryption — the only functional contract
// callers rely on is the expiry comparison.
type PortalToken struct {
	// MemberID identifies the member the link signs in.
	MemberID string `json:"u"`

	// Secret is the last four digits of the member's mobile number.
	Secret string `json:"p"`

	// ExpiresAt is the expiry instant in epoch milliseconds.
	ExpiresAt int64 `json:"e"`
}

// Expired reports whether the token is past its expiry.
func (t PortalToken) Expired(now time.Time) bool {
	return now.UnixMilli() >= t.ExpiresAt
}

func xorBytes(data []byte, key string) []byte {
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ key[i%len(key)]
	}
	return out
}

// EncodeToken serializes and obfuscates a portal token into a URL-safe
// opaque string: JSON, XOR with the key, unpadded base64url.
func EncodeToken(t PortalToken, key string) string {
	payload, _ := json.Marshal(t)
	return base64.RawURLEncoding.EncodeToString(xorBytes(payload, key))
}

// DecodeToken reverses EncodeToken. Returns ErrInvalidToken for anything
// that does not decode to a token payload; it does not check expiry, which
// is the caller's contract via Expired.
func DecodeToken(opaque, key string) (PortalToken, error) {
	raw, err := base64.RawURLEncoding.DecodeString(opaque)
	if err != nil {
		return PortalToken{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var t PortalToken
	if err := json.Unmarshal(xorBytes(raw, key), &t); err != nil {
		return PortalToken{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if t.MemberID == "" {
		return PortalToken{}, ErrInvalidToken
	}
	return t, nil
}

// MagicLinkValidity is how long a member self-service link stays usable.
const MagicLinkValidity = 7 * 24 * time.Hour

// MagicLink builds a self-service login URL for a member: the token carries
// the member ID, the last four digits of their mobile number, and a 7-day
// expiry. baseURL should be the externally reachable application URL.
func MagicLink(baseURL, memberID, mobile, key string) string {
	t := PortalToken{
		MemberID:  memberID,
		Secret:    lastDigits(mobile, 4),
		ExpiresAt: time.Now().Add(MagicLinkValidity).UnixMilli(),
	}
	return fmt.Sprintf("%s/?loginToken=%s", baseURL, EncodeToken(t, key))
}

// lastDigits strips non-digits and returns the trailing n digits.
func lastDigits(s string, n int) string {
	var digits []byte
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) <= n {
		return string(digits)
	}
	return string(digits[len(digits)-n:])
}
