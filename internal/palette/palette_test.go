package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestDefaultPalette(t *testing.T) {
	p := Default()
	if len(p) != 8 {
		t.Fatalf("len(Default()) = %d, expected 8", len(p))
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	red, ok := p.Lookup("Red")
	if !ok {
		t.Fatal("Red missing from default palette")
	}
	if red.RGB != (color.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("Red = %v", red.RGB)
	}
	orange, _ := p.Lookup("Orange")
	if orange.RGB != (color.RGBA{R: 255, G: 165, B: 0, A: 255}) {
		t.Errorf("Orange = %v", orange.RGB)
	}
	if _, ok := p.Lookup("Magenta"); ok {
		t.Error("Lookup(Magenta) should fail")
	}
}

func TestValidate(t *testing.T) {
	c := rgb(1, 2, 3)
	tests := []struct {
		name    string
		p       Palette
		wantErr error
	}{
		{
			name:    "too small",
			p:       Palette{{"A", c}, {"B", c}, {"C", c}},
			wantErr: ErrTooSmall,
		},
		{
			name:    "duplicate",
			p:       Palette{{"A", c}, {"B", c}, {"C", c}, {"A", c}},
			wantErr: ErrDuplicateName,
		},
		{
			name:    "empty name",
			p:       Palette{{"A", c}, {" ", c}, {"C", c}, {"D", c}},
			wantErr: ErrEmptyName,
		},
		{
			name: "minimum size",
			p:    Palette{{"A", c}, {"B", c}, {"C", c}, {"D", c}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#ff0000", want: rgb(255, 0, 0)},
		{in: "#FFA500", want: rgb(255, 165, 0)},
		{in: " #800080 ", want: rgb(128, 0, 128)},
		{in: "#fff", want: rgb(255, 255, 255)},
		{in: "ff0000", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseHex(%q) expected error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseHex(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}
