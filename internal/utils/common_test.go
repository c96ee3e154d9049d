package utils

import "testing"

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{" yes ", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"off", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseBool(tt.in); got != tt.want {
				t.Errorf("ParseBool(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "milk", 10, "milk"},
		{"exact", "milk", 4, "milk"},
		{"cut", "buy oat milk", 8, "buy o..."},
		{"tiny max", "milk", 2, "mi"},
		{"zero", "milk", 0, ""},
		{"runes", "café au lait", 6, "caf..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"#", ""},
		{"/intents", "intents"},
		{"#/intents/2/kind", "intents[2].kind"},
		{"/a~1b/c~0d", "a/b.c~d"},
		{"/0/name", "[0].name"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := JSONPointerToPath(tt.in); got != tt.want {
				t.Errorf("JSONPointerToPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
