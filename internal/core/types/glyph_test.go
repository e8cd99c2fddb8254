package types

import "testing"

func TestMakeGlyph(t *testing.T) {
	tests := []struct {
		name  string
		color uint32
		char  byte
	}{
		{"hero", 0xFFFFFF, '@'},
		{"orc", 0x3F7F3F, 'o'},
		{"corpse", 0x8B0000, '%'},
		{"black space", 0x000000, ' '},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := MakeGlyph(tt.color, tt.char)

			if g.Char() != tt.char {
				t.Errorf("Char() = %q, want %q", g.Char(), tt.char)
			}
			if g.Color() != tt.color {
				t.Errorf("Color() = %06X, want %06X", g.Color(), tt.color)
			}
		})
	}
}

func TestGlyph_HexColor(t *testing.T) {
	g := MakeGlyph(0x00BF71, '/')
	if g.HexColor() != "#00BF71" {
		t.Errorf("HexColor() = %s, want #00BF71", g.HexColor())
	}

	// Ведущие нули не теряются
	dark := MakeGlyph(0x00000F, '.')
	if dark.HexColor() != "#00000F" {
		t.Errorf("HexColor() = %s, want #00000F", dark.HexColor())
	}
}

func TestGlyph_ColorOverflowMasked(t *testing.T) {
	// Биты выше 24-го отбрасываются, символ не повреждается
	g := MakeGlyph(0xFF123456, 'X')
	if g.Color() != 0x123456 {
		t.Errorf("Color() = %06X, want 123456", g.Color())
	}
	if g.Char() != 'X' {
		t.Errorf("Char() = %q, want 'X'", g.Char())
	}
}
