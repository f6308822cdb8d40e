package parser

import "testing"

func TestColumnNumber(t *testing.T) {
	tests := []struct {
		label    string
		expected int
	}{
		{"A", 1},
		{"I", 9},
		{"Z", 26},
		{"AA", 27},
		{"AI", 35},
		{"AZ", 52},
		{"BA", 53},
		{"BL", 64},
		{"bl", 64},
		{"XFD", 16384},
	}

	for _, tt := range tests {
		got, err := ColumnNumber(tt.label)
		if err != nil {
			t.Errorf("ColumnNumber(%q) returned error: %v", tt.label, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ColumnNumber(%q) = %d, expected %d", tt.label, got, tt.expected)
		}
	}
}

func TestColumnNumberInvalid(t *testing.T) {
	for _, label := range []string{"", "A1", "-", "XFE", "AAAA"} {
		if _, err := ColumnNumber(label); err == nil {
			t.Errorf("ColumnNumber(%q) expected error", label)
		}
	}
}

func TestColumnIndex(t *testing.T) {
	got, err := ColumnIndex("AI")
	if err != nil {
		t.Fatalf("ColumnIndex failed: %v", err)
	}
	if got != 34 {
		t.Errorf("ColumnIndex(AI) = %d, expected 34", got)
	}
}

func TestColumnNameRoundTrip(t *testing.T) {
	for n := 1; n <= 1000; n++ {
		name, err := ColumnName(n)
		if err != nil {
			t.Fatalf("ColumnName(%d) failed: %v", n, err)
		}
		back, err := ColumnNumber(name)
		if err != nil || back != n {
			t.Fatalf("ColumnNumber(ColumnName(%d)=%q) = %d, %v", n, name, back, err)
		}
	}
	if _, err := ColumnName(0); err == nil {
		t.Error("ColumnName(0) expected error")
	}
}
