package components

import (
	"strings"
	"testing"
)

func statusOptions() []Option {
	return []Option{
		{Label: "vacant", Value: "vacant"},
		{Label: "occupied", Value: "occupied"},
	}
}

func TestSelectFieldCycling(t *testing.T) {
	s := NewSelectField("status", "Status", statusOptions())
	s.Focus()

	if s.Value() != "vacant" {
		t.Errorf("Initial value should be vacant, got %q", s.Value())
	}

	s, _ = s.Update(keyMsg("right"))
	if s.Value() != "occupied" {
		t.Errorf("Right should cycle forward, got %q", s.Value())
	}

	s, _ = s.Update(keyMsg("right"))
	if s.Value() != "vacant" {
		t.Errorf("Right should wrap around, got %q", s.Value())
	}

	s, _ = s.Update(keyMsg("left"))
	if s.Value() != "occupied" {
		t.Errorf("Left should cycle backward with wrap, got %q", s.Value())
	}
}

func TestSelectFieldSetValue(t *testing.T) {
	s := NewSelectField("status", "Status", statusOptions())

	s.SetValue("occupied")
	if s.Value() != "occupied" {
		t.Errorf("SetValue should select the matching option, got %q", s.Value())
	}

	s.SetValue("bogus")
	if s.Value() != "occupied" {
		t.Error("SetValue with an unknown value should keep the selection")
	}
}

func TestSelectFieldUnfocusedIgnoresKeys(t *testing.T) {
	s := NewSelectField("status", "Status", statusOptions())

	s, _ = s.Update(keyMsg("right"))
	if s.Value() != "vacant" {
		t.Error("Unfocused field should ignore input")
	}
}

func TestSelectFieldEmpty(t *testing.T) {
	s := NewSelectField("office_id", "Office", nil)
	s.Focus()

	if s.Value() != "" {
		t.Errorf("Empty option set should yield empty value, got %q", s.Value())
	}
	s, _ = s.Update(keyMsg("right"))
	if s.Value() != "" {
		t.Error("Cycling an empty option set should be a no-op")
	}
	if !strings.Contains(s.View(), "none") {
		t.Error("Empty option set should render a placeholder")
	}
}
