package webhook

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"whatsapp:+972501234567", "972501234567"},
		{"WhatsApp:+972501234567", "972501234567"},
		{"+972501234567", "972501234567"},
		{"050-1234567", "972501234567"},
		{"0501234567", "972501234567"},
		{"501234567", "972501234567"}, // bare nine digits
		{"+14155550123", "972155550123"},
		{"12345678", "12345678"}, // too short, returned as-is
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizePhone(tt.raw); got != tt.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
