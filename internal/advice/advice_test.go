package advice

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"exact keyword", "plastic bottle", "Recycle (Rinse first)"},
		{"upper case and padding", "  PLASTIC BOTTLE  ", "Recycle (Rinse first)"},
		{"keyword inside phrase", "a used plastic bottle", "Recycle (Rinse first)"},
		{"greasy pizza box", "greasy pizza box from friday", "Compost (if greasy) / Recycle (if clean)"},
		{"batteries", "old AA batteries", "E-Waste Drop-off (Do not bin)"},
		{"no match", "tire", DefaultGuidance},
		{"empty query", "", DefaultGuidance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.query); got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestLookupDeterministic(t *testing.T) {
	// The same query must hit the same rule on every call.
	first := Lookup("pizza box with a plastic bottle inside")
	for i := 0; i < 10; i++ {
		if got := Lookup("pizza box with a plastic bottle inside"); got != first {
			t.Fatalf("call %d returned %q, first call returned %q", i, got, first)
		}
	}
	// Definition order says pizza box wins the tie.
	if first != "Compost (if greasy) / Recycle (if clean)" {
		t.Errorf("tie-break result = %q, want the pizza box guidance", first)
	}
}
