// Package sanitize normalizes untrusted free-text input before it reaches
// validation or storage. Extracted bill text and form fields both pass
// through here.
package sanitize

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	maxStringLen = 1000
	maxPhoneLen  = 20
)

var (
	htmlTagRe      = regexp.MustCompile(`<[^>]*>`)
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe = regexp.MustCompile(`(?i)on\w+=`)
	nonPhoneRe     = regexp.MustCompile(`[^\d+\s-]`)
	numberTokenRe  = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// String strips HTML tags, script fragments and angle brackets, trims
// whitespace and caps the length.
func String(input string) string {
	s := strings.TrimSpace(input)
	s = htmlTagRe.ReplaceAllString(s, "")
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	s = jsProtocolRe.ReplaceAllString(s, "")
	s = eventHandlerRe.ReplaceAllString(s, "")
	if len(s) > maxStringLen {
		s = s[:maxStringLen]
	}
	return s
}

// PhoneNumber keeps only digits, plus signs, spaces and hyphens.
func PhoneNumber(input string) string {
	s := strings.TrimSpace(input)
	s = nonPhoneRe.ReplaceAllString(s, "")
	if len(s) > maxPhoneLen {
		s = s[:maxPhoneLen]
	}
	return s
}

// Number parses a free-text numeric value such as "Rs. 1,299.50", clamping
// to zero on garbage or negative input. The first numeric token wins;
// currency symbols and thousands separators around it are ignored.
func Number(input string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(input), ",", "")
	token := numberTokenRe.FindString(s)
	if token == "" {
		return 0
	}
	n, err := strconv.ParseFloat(token, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Amount clamps an already-numeric value to zero when negative or NaN.
// Extracted bill figures pass through here.
func Amount(n float64) float64 {
	if n < 0 || n != n {
		return 0
	}
	return n
}

// DealerInput holds the free-text fields of a dealer form.
type DealerInput struct {
	DealerName     string
	ShopName       string
	MobileNumber   string
	WhatsappNumber string
	Address        string
	Notes          string
}

// Dealer sanitizes all fields of a dealer payload.
func Dealer(in DealerInput) DealerInput {
	return DealerInput{
		DealerName:     String(in.DealerName),
		ShopName:       String(in.ShopName),
		MobileNumber:   PhoneNumber(in.MobileNumber),
		WhatsappNumber: PhoneNumber(in.WhatsappNumber),
		Address:        String(in.Address),
		Notes:          String(in.Notes),
	}
}
