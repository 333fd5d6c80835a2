package exchange

import "testing"

func TestRoutingString(t *testing.T) {
	tests := []struct {
		routing Routing
		want    string
	}{
		{Smart, "SMART"},
		{Nyse, "NYSE"},
		{Idealpro, "IDEALPRO"},
		{Routing("OTCBB"), "OTCBB"},
	}

	for _, tt := range tests {
		if got := tt.routing.String(); got != tt.want {
			t.Errorf("Routing(%q).String() = %q, want %q", string(tt.routing), got, tt.want)
		}
	}
}

func TestValueTypesAreComparable(t *testing.T) {
	// Routing, Primary and Currency are used as map keys and in sorted
	// slices throughout the client; they must compare by value.
	venues := map[Routing]bool{Smart: true, Nyse: true}
	if !venues[Routing("SMART")] {
		t.Error("Routing comparison by value failed")
	}

	if USD == Currency("EUR") {
		t.Error("distinct currencies compared equal")
	}
	if Primary("NASDAQ") != Primary("NASDAQ") {
		t.Error("equal primaries compared unequal")
	}
}
