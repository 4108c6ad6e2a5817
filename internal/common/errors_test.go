package common

import (
	"strings"
	"testing"
	"unicode/utf8"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Fatalf("Truncate(short) = %q", got)
	}
	long := strings.Repeat("a", 150)
	if got := Truncate(long, 100); len(got) != 100 {
		t.Fatalf("Truncate len = %d, want 100", len(got))
	}
}

func TestTruncateDoesNotSplitRunes(t *testing.T) {
	// Hebrew runes are two bytes each; an odd byte budget lands mid-rune.
	s := strings.Repeat("ש", 50)
	got := Truncate(s, 31)
	if !utf8.ValidString(got) {
		t.Fatalf("Truncate produced invalid UTF-8: %q", got)
	}
	if len(got) > 31 {
		t.Fatalf("Truncate len = %d, want <= 31", len(got))
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	if err.Unwrap() != ErrInvalidInput {
		t.Fatal("Unwrap did not return cause")
	}
	if !strings.Contains(err.Error(), "CONFIG_ERROR") || !strings.Contains(err.Error(), "DB_URL is required") {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestGRPCErrorHelpers(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{InvalidArgumentError("user_id is required"), codes.InvalidArgument, "user_id is required"},
		{InvalidArgumentErrorf("type must be one of %v", []string{"expense"}), codes.InvalidArgument, "type must be one of [expense]"},
		{NotFoundError("document not found"), codes.NotFound, "document not found"},
		{AlreadyExistsErrorf("document already exists: %s", "abc"), codes.AlreadyExists, "document already exists: abc"},
		{InternalError("upload failed"), codes.Internal, "upload failed"},
	}
	for _, tt := range tests {
		st, ok := status.FromError(tt.err)
		if !ok {
			t.Fatalf("%v is not a status error", tt.err)
		}
		if st.Code() != tt.code {
			t.Errorf("code = %v, want %v", st.Code(), tt.code)
		}
		if st.Message() != tt.msg {
			t.Errorf("message = %q, want %q", st.Message(), tt.msg)
		}
	}
}
