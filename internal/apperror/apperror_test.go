package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindsSurviveWrapping(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{Validation("NIS, name, and kelas are required"), ErrValidation},
		{Conflict("NIS already exists"), ErrConflict},
		{NotFound("Student not found"), ErrNotFound},
		{Unauthorized("Invalid email or password"), ErrUnauthorized},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("handler: %w", tc.err)
		if !errors.Is(wrapped, tc.kind) {
			t.Fatalf("%v: kind lost after wrapping", tc.err)
		}
		msg, ok := Message(wrapped)
		if !ok || msg != tc.err.Error() {
			t.Fatalf("message = %q ok=%v", msg, ok)
		}
	}

	if _, ok := Message(errors.New("db down")); ok {
		t.Fatalf("plain errors carry no client message")
	}
}
