package mailer

import (
	"testing"
)

func TestCompose(t *testing.T) {
	subject, body, err := compose(KeyRegistrationConfirmation, map[string]string{
		"Username": "reader",
		"Email":    "reader@example.com",
	})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if subject != "Registration confirmation" {
		t.Errorf("unexpected subject %q", subject)
	}
	if body != "Email: reader@example.com, Username: reader" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestComposeUnknownTemplate(t *testing.T) {
	if _, _, err := compose("password_reset", nil); err == nil {
		t.Error("expected unknown templates to be rejected")
	}
}

func TestVarsLineStableOrder(t *testing.T) {
	vars := map[string]string{"b": "2", "a": "1", "c": "3"}
	want := "a: 1, b: 2, c: 3"
	for i := 0; i < 10; i++ {
		if got := varsLine(vars); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestVarsLineEmpty(t *testing.T) {
	if got := varsLine(nil); got != "" {
		t.Errorf("expected an empty body, got %q", got)
	}
}
