package core

import (
	"strings"
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}
}

// TestNewFilterID tests that filter IDs embed their chart and field
func TestNewFilterID(t *testing.T) {
	id := NewFilterID("chart-1", "region")
	if !strings.HasPrefix(string(id), "chart-1-region-") {
		t.Errorf("Expected chart and field prefix, got %s", id)
	}

	other := NewFilterID("chart-1", "region")
	if id == other {
		t.Error("Expected distinct IDs for repeated calls")
	}
}

// TestParseID tests ID parsing and validation
func TestParseID(t *testing.T) {
	tests := []struct {
		input    string
		expected ID
		hasError bool
	}{
		{"valid-id", ID("valid-id"), false},
		{"  padded  ", ID("padded"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input %q, but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input %q: %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}
