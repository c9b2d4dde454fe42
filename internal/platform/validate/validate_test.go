package validate

import (
	"strings"
	"testing"

	perr "insighthub/internal/platform/errors"
)

type probe struct {
	Name  string   `json:"name" validate:"required"`
	Count int      `json:"count" validate:"min=0,max=10"`
	Tags  []string `json:"tags" validate:"dive,required"`
	Color string   `json:"color,omitempty" validate:"omitempty,hue"`
}

func init() {
	_ = RegisterTag("hue", func(fl FieldLevel) bool {
		s := fl.Field().String()
		return s == "red" || s == "green"
	}, "{0} has unknown value {1}")
}

func TestStruct_OK(t *testing.T) {
	if err := Struct(probe{Name: "a", Count: 3, Tags: []string{"x"}, Color: "red"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_RequiredUsesJSONName(t *testing.T) {
	err := Struct(probe{Count: 1})
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("want validation code, got %v", err)
	}
	e, _ := perr.As(err)
	if e.Field() != "name" {
		t.Fatalf("field = %q, want name", e.Field())
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestStruct_ShortMinMax(t *testing.T) {
	err := Struct(probe{Name: "a", Count: 11})
	if err == nil || !strings.Contains(err.Error(), "count must be at most 10") {
		t.Fatalf("unexpected: %v", err)
	}
	err = Struct(probe{Name: "a", Count: -1})
	if err == nil || !strings.Contains(err.Error(), "count must be at least 0") {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestStruct_CustomTagTranslation(t *testing.T) {
	err := Struct(probe{Name: "a", Color: "mauve"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "color has unknown value mauve") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestStruct_DiveRequired(t *testing.T) {
	err := Struct(probe{Name: "a", Tags: []string{"ok", ""}})
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("want validation code, got %v", err)
	}
}

func TestFieldAndMessage_Nil(t *testing.T) {
	if f, m := FieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil -> %q %q", f, m)
	}
}
