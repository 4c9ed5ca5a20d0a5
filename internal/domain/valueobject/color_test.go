package valueobject

import (
	"errors"
	"math"
	"testing"
)

func TestColorHexRoundTrip(t *testing.T) {
	palette := []string{
		"#FD4C49", "#FF881E", "#007BFA", "#6E44FE", "#33CF69", "#E66DD4",
		"#F9D4D4", "#34A7FE", "#46E69D", "#35347C", "#FF674D", "#FF99CC",
		"#F6C48B", "#7994F5", "#832CF1", "#AD56DA", "#8D72E3", "#2FD058",
	}

	for _, hex := range palette {
		color, err := ColorFromHex(hex)
		if err != nil {
			t.Fatalf("ColorFromHex(%q) returned error: %v", hex, err)
		}
		if got := color.Hex(); got != hex {
			t.Errorf("ColorFromHex(%q).Hex() = %q, want %q", hex, got, hex)
		}
	}
}

func TestColorRoundTripWithinRounding(t *testing.T) {
	// Arbitrary channel values survive encode/decode within 1/255.
	colors := []Color{
		NewColor(0, 0, 0),
		NewColor(1, 1, 1),
		NewColor(0.5, 0.25, 0.75),
		NewColor(0.123, 0.456, 0.789),
		NewColor(0.999, 0.001, 0.333),
	}

	const tolerance = 1.0 / 255.0
	for _, c := range colors {
		decoded, err := ColorFromHex(c.Hex())
		if err != nil {
			t.Fatalf("ColorFromHex(%q) returned error: %v", c.Hex(), err)
		}
		if math.Abs(decoded.R-c.R) > tolerance ||
			math.Abs(decoded.G-c.G) > tolerance ||
			math.Abs(decoded.B-c.B) > tolerance {
			t.Errorf("round trip of %+v yielded %+v, outside ±1/255", c, decoded)
		}
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "with hash", input: "#FD4C49", want: "#FD4C49"},
		{name: "without hash", input: "FD4C49", want: "#FD4C49"},
		{name: "lowercase", input: "#fd4c49", want: "#FD4C49"},
		{name: "surrounding whitespace", input: "  #FD4C49\n", want: "#FD4C49"},
		{name: "empty", input: "", wantErr: true},
		{name: "hash only", input: "#", wantErr: true},
		{name: "too short", input: "#FD4C4", wantErr: true},
		{name: "too long", input: "#FD4C491", wantErr: true},
		{name: "three digit shorthand rejected", input: "#F00", wantErr: true},
		{name: "non-hex digits", input: "#GGGGGG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, err := ColorFromHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ColorFromHex(%q) expected error, got %+v", tt.input, color)
				}
				if !errors.Is(err, ErrInvalidColorFormat) {
					t.Errorf("ColorFromHex(%q) error = %v, want ErrInvalidColorFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ColorFromHex(%q) returned error: %v", tt.input, err)
			}
			if got := color.Hex(); got != tt.want {
				t.Errorf("ColorFromHex(%q).Hex() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewColorClamps(t *testing.T) {
	c := NewColor(-0.5, 1.5, 0.5)
	if c.R != 0 || c.G != 1 || c.B != 0.5 {
		t.Errorf("NewColor(-0.5, 1.5, 0.5) = %+v, want clamped channels", c)
	}
}
