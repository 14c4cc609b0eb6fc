package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrevrochas/techshop/internal/search"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercase", "NVIDIA", "nvidia"},
		{"accents", "Memória RAM", "memoria ram"},
		{"cedilla and tilde", "Informações", "informacoes"},
		{"punctuation folded to space", "Placa-Mãe/ATX", "placa mae atx"},
		{"whitespace collapsed", "  Fonte   600W  ", "fonte 600w"},
		{"only punctuation", "!!!", ""},
		{"mixed runs", "RTX--4070 (Ti)", "rtx 4070 ti"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, search.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Memória RAM",
		"Placa de Vídeo RTX",
		"  Fonte -- 600W!  ",
		"ção çedilha",
		"",
	}
	for _, in := range inputs {
		once := search.Normalize(in)
		assert.Equal(t, once, search.Normalize(once))
	}
}

func TestNormalize_AccentInsensitiveEquality(t *testing.T) {
	assert.Equal(t, search.Normalize("memoria ram"), search.Normalize("Memória RAM"))
	assert.Equal(t, search.Normalize("placa de video"), search.Normalize("Placa de Vídeo"))
}
