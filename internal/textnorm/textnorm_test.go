// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"accents removed", "TÍTULO", "titulo"},
		{"whitespace collapsed", "  espacios   múltiples  ", "espacios multiples"},
		{"punctuation to space", "machine-learning: (deep)", "machine learning deep"},
		{"digits kept", "Web 2.0", "web 2 0"},
		{"ntilde", "Diseño y Señales", "diseno y senales"},
		{"only punctuation", "¿¡!?", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"TÍTULO",
		"  espacios   múltiples  ",
		"Inteligencia Artificial: Redes Neuronales (2023)",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestGenerateUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Daniel Muñoz", "daniel.munoz"},
		{"Ana Gómez García", "ana.gomez.garcia"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := GenerateUsername(tt.in); got != tt.want {
			t.Errorf("GenerateUsername(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
