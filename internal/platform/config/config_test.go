package config

import (
	"testing"
	"time"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	core := root.Prefix("CORE_")
	if got := core.key("TREND_WINDOW"); got != "CORE_TREND_WINDOW" {
		t.Fatalf("key() = %q, want %q", got, "CORE_TREND_WINDOW")
	}
	nested := core.Prefix("INSIGHT_")
	if got := nested.key("EXCLUSIVE"); got != "CORE_INSIGHT_EXCLUSIVE" {
		t.Fatalf("nested key() = %q, want %q", got, "CORE_INSIGHT_EXCLUSIVE")
	}
}

func TestMayFallbacks(t *testing.T) {
	c := New().Prefix("M_")

	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("M_INT_BAD", "x")
	if got := c.MayInt("INT_BAD", 3); got != 3 {
		t.Fatalf("MayInt bad -> default = %d", got)
	}
	t.Setenv("M_S", " json ")
	if got := c.MayString("S", "console"); got != "json" {
		t.Fatalf("MayString = %q", got)
	}
	t.Setenv("M_B", "false")
	if got := c.MayBool("B", true); got {
		t.Fatalf("MayBool = true, want false")
	}
	t.Setenv("M_B_BAD", "maybe")
	if got := c.MayBool("B_BAD", true); !got {
		t.Fatalf("MayBool bad -> default expected")
	}
	t.Setenv("M_D", "90m")
	if got := c.MayDuration("D", time.Hour); got != 90*time.Minute {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("M_D_BAD", "soon")
	if got := c.MayDuration("D_BAD", time.Hour); got != time.Hour {
		t.Fatalf("MayDuration bad -> default = %v", got)
	}
}

func TestMayLocation(t *testing.T) {
	c := New().Prefix("Z_")
	if got := c.MayLocation("MISSING", nil); got != time.UTC {
		t.Fatalf("MayLocation nil default = %v", got)
	}
	t.Setenv("Z_BAD", "Mars/Olympus")
	if got := c.MayLocation("BAD", time.UTC); got != time.UTC {
		t.Fatalf("MayLocation bad -> default = %v", got)
	}
	t.Setenv("Z_OK", "UTC")
	if got := c.MayLocation("OK", nil); got.String() != "UTC" {
		t.Fatalf("MayLocation = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("E_")
	t.Setenv("E_LIST", " a, ,b ,c")
	got := c.MayCSV("LIST", nil)
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("MayCSV = %v", got)
	}
	if got := c.MayCSV("MISSING", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("MayCSV default = %v", got)
	}
}
