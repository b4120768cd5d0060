package sanitize

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  Formal Shirt  ", "Formal Shirt"},
		{"strips html tags", "<b>Shirt</b>", "Shirt"},
		{"strips script", "<script>alert(1)</script>Pants", "alert(1)Pants"},
		{"strips angle brackets", "a <> b", "a  b"},
		{"strips js protocol", "javascript:alert(1)", "alert(1)"},
		{"strips event handlers", "onclick=steal()", "steal()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.input); got != tt.want {
				t.Fatalf("String(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+91 98765 43210", "+91 98765 43210"},
		{"98765-43210", "98765-43210"},
		{"call me: 98765", "  98765"},
		{"abc", ""},
	}

	for _, tt := range tests {
		if got := PhoneNumber(tt.input); got != tt.want {
			t.Fatalf("PhoneNumber(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1299", 1299},
		{" Rs. 1299.50 ", 1299.50},
		{"₹1,299.50", 1299.50},
		{"1299.50 net", 1299.50},
		{"-45", 0},
		{"garbage", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := Number(tt.input); got != tt.want {
			t.Fatalf("Number(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDealer(t *testing.T) {
	got := Dealer(DealerInput{
		DealerName:   " <b>Ramesh</b> ",
		ShopName:     "Textile Hub<script>",
		MobileNumber: "+91 91234 56789 ext 2",
		Address:      "12 Market Rd",
	})
	if got.DealerName != "Ramesh" {
		t.Fatalf("dealer name = %q", got.DealerName)
	}
	if got.ShopName != "Textile Hub" {
		t.Fatalf("shop name = %q", got.ShopName)
	}
	if got.MobileNumber != "+91 91234 56789  2" {
		t.Fatalf("mobile = %q", got.MobileNumber)
	}
}
