package runner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRunMissingExecutable(t *testing.T) {
	t.Parallel()

	r := New(nil)
	err := r.Run(context.Background(), t.TempDir(), time.Second, "definitely-not-a-real-binary-xyz")
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Run() = %v, want ErrToolNotFound", err)
	}
}

func TestRunCapturesFailure(t *testing.T) {
	t.Parallel()

	r := New(nil)
	err := r.Run(context.Background(), t.TempDir(), 5*time.Second, "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("Run() = nil for failing command")
	}
	if got := err.Error(); !strings.Contains(got, "boom") {
		t.Errorf("error %q does not include stderr output", got)
	}
}

func TestRunSucceeds(t *testing.T) {
	t.Parallel()

	r := New(nil)
	if err := r.Run(context.Background(), t.TempDir(), 5*time.Second, "sh", "-c", "true"); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
}

func TestLastStderrLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"one\n", "one"},
		{"one\ntwo\n\n", "two"},
		{"  \n\t\n", ""},
	}
	for _, tt := range tests {
		if got := lastStderrLine(tt.in); got != tt.want {
			t.Errorf("lastStderrLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
