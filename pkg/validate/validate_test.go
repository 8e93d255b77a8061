package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/cannahub/admin-console/internal/upstream"
)

type storeForm struct {
	Name  string `validate:"required,max=100" label:"Store Name"`
	Email string `validate:"required,email" label:"Contact Email"`
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(&storeForm{Name: "Green Leaf", Email: "ops@greenleaf.example"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_MaxLengthMessageIncludesEnteredCount(t *testing.T) {
	form := &storeForm{
		Name:  strings.Repeat("x", 101),
		Email: "ops@greenleaf.example",
	}

	err := Struct(form)
	var vErr *upstream.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	msgs := vErr.FieldMessages()
	want := "Store Name: Must be 100 characters or less (you entered 101 characters)"
	if len(msgs) != 1 || msgs[0] != want {
		t.Fatalf("FieldMessages() = %v, want [%q]", msgs, want)
	}
}

func TestStruct_RequiredAndEmail(t *testing.T) {
	err := Struct(&storeForm{Name: "", Email: "not-an-email"})
	var vErr *upstream.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if got := vErr.Fields["Store Name"]; len(got) != 1 || got[0] != "This field is required" {
		t.Fatalf("Store Name messages = %v", got)
	}
	if got := vErr.Fields["Contact Email"]; len(got) != 1 || got[0] != "Must be a valid email address" {
		t.Fatalf("Contact Email messages = %v", got)
	}
}

func TestStruct_OneofMessageListsChoices(t *testing.T) {
	type form struct {
		Channel string `validate:"required,oneof=sms email push" label:"Channel"`
	}
	err := Struct(&form{Channel: "fax"})
	var vErr *upstream.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got := vErr.Fields["Channel"]; len(got) != 1 || got[0] != "Must be one of: sms, email, push" {
		t.Fatalf("Channel messages = %v", got)
	}
}

func TestSplitCamelFallback(t *testing.T) {
	type form struct {
		BatchNumber string `validate:"required"`
	}
	err := Struct(&form{})
	var vErr *upstream.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := vErr.Fields["Batch Number"]; !ok {
		t.Fatalf("expected camel-case split field name, got %v", vErr.Fields)
	}
}
