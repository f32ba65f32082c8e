package colorx

import (
	"math"
	"strconv"
	"testing"
)

func TestHexToLuminance(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want float64
		ok   bool
	}{
		{name: "black", hex: "#000000", want: 0, ok: true},
		{name: "white", hex: "#FFFFFF", want: 1, ok: true},
		{name: "no_hash", hex: "101010", want: 0.00518, ok: true},
		{name: "lowercase", hex: "#f0f0f0", want: 0.87137, ok: true},
		{name: "short", hex: "#FFF", ok: false},
		{name: "long", hex: "#FFFFFFFF", ok: false},
		{name: "non_hex", hex: "#GGGGGG", ok: false},
		{name: "rgba", hex: "rgba(0, 0, 0, 0.5)", ok: false},
		{name: "empty", hex: "", ok: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := HexToLuminance(test.hex)
			if ok != test.ok {
				t.Fatalf("HexToLuminance(%q) ok = %t, want %t", test.hex, ok, test.ok)
			}
			if !ok {
				return
			}
			if got < 0 || got > 1 {
				t.Fatalf("HexToLuminance(%q) = %f, outside [0,1]", test.hex, got)
			}
			if math.Abs(got-test.want) > 0.0005 {
				t.Fatalf("HexToLuminance(%q) = %f, want %f", test.hex, got, test.want)
			}
		})
	}
}

func TestIsDarkBackground(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		want     bool
	}{
		{name: "near_black", value: "#101010", want: true},
		{name: "near_white", value: "#F0F0F0", want: false},
		{name: "rgba_default_light", value: "rgba(10, 10, 10, 1)", fallback: false, want: false},
		{name: "rgba_override_dark", value: "rgba(10, 10, 10, 1)", fallback: true, want: true},
		{name: "garbage_default_light", value: "not-a-color", fallback: false, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsDarkBackground(test.value, test.fallback); got != test.want {
				t.Fatalf("IsDarkBackground(%q, %t) = %t, want %t", test.value, test.fallback, got, test.want)
			}
		})
	}
}

func TestHexHSLRoundTrip(t *testing.T) {
	hexes := []string{
		"#000000", "#FFFFFF", "#FF0000", "#00FF00", "#0000FF",
		"#1E2B3A", "#FDF5E6", "#F400A1", "#5F9EA0", "#BF5700",
		"#808080", "#00F0FF", "#D35400", "#121212",
	}

	for _, hex := range hexes {
		t.Run(hex, func(t *testing.T) {
			hsl, ok := HexToHSL(hex)
			if !ok {
				t.Fatalf("HexToHSL(%q) failed", hex)
			}
			if hsl.H < 0 || hsl.H > 1 || hsl.S < 0 || hsl.S > 1 || hsl.L < 0 || hsl.L > 1 {
				t.Fatalf("HexToHSL(%q) = %+v, channels outside [0,1]", hex, hsl)
			}
			got := HSLToHex(hsl.H, hsl.S, hsl.L)
			assertHexClose(t, got, hex)
		})
	}
}

func TestHSLToHexGray(t *testing.T) {
	if got := HSLToHex(0, 0, 0.5); got != "#808080" {
		t.Fatalf("HSLToHex(0, 0, 0.5) = %q, want #808080", got)
	}
}

// assertHexClose allows rounding drift of 1 per channel across the round trip.
func assertHexClose(t *testing.T, got, want string) {
	t.Helper()
	if len(got) != 7 || len(want) != 7 {
		t.Fatalf("hex length mismatch: got %q, want %q", got, want)
	}
	for i := 1; i < 7; i += 2 {
		gv, err := strconv.ParseInt(got[i:i+2], 16, 32)
		if err != nil {
			t.Fatalf("bad channel in %q: %v", got, err)
		}
		wv, err := strconv.ParseInt(want[i:i+2], 16, 32)
		if err != nil {
			t.Fatalf("bad channel in %q: %v", want, err)
		}
		if diff := gv - wv; diff < -1 || diff > 1 {
			t.Fatalf("round trip %q -> %q, channel at %d differs by %d", want, got, i, diff)
		}
	}
}
