package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"accented", "Córdoba", "CORDOBA"},
		{"upper", "CORDOBA", "CORDOBA"},
		{"lower", "cordoba", "CORDOBA"},
		{"trim", "  Neuquén ", "NEUQUEN"},
		{"enie", "Cañada de Gómez", "CANADA DE GOMEZ"},
		{"cedilla and umlaut", "Güemes Ça", "GUEMES CA"},
		{"mojibake lower", "CÃ³rdoba", "CORDOBA"},
		{"mojibake enie", "EspaÃ±a", "ESPANA"},
		{"mojibake upper", "RÃ\u008dO NEGRO", "RIO NEGRO"},
		{"mojibake capital O", "CÃ“RDOBA", "CORDOBA"},
		{"mojibake capital N", "CAÃ‘ADA", "CANADA"},
		{"mojibake capital E", "NEUQUÃ‰N", "NEUQUEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	for _, s := range []string{"Córdoba", "CÃ³rdoba", "Lanús Este", "Ciudad Autónoma de Buenos Aires"} {
		once := NormalizeText(s)
		assert.Equal(t, once, NormalizeText(once), s)
	}
}

func TestNormalizeProvince(t *testing.T) {
	aliases := DefaultLookupRules().ProvinceAliases

	assert.Equal(t, "BUENOS AIRES", NormalizeProvince("CABA", aliases))
	assert.Equal(t, "BUENOS AIRES", NormalizeProvince("Capital Federal", aliases))
	assert.Equal(t, "BUENOS AIRES", NormalizeProvince("Ciudad Autónoma de Buenos Aires", aliases))
	assert.Equal(t, "BUENOS AIRES", NormalizeProvince(" gran buenos aires", aliases))
	assert.Equal(t, "SANTA FE", NormalizeProvince("Santa Fe", aliases))
	assert.Equal(t, "", NormalizeProvince("", aliases))
}

func TestProvinceCode(t *testing.T) {
	tests := map[string]string{
		"Salta":                           "A",
		"Buenos Aires":                    "B",
		"Provincia de Buenos Aires":       "B",
		"Gran Buenos Aires":               "B",
		"CABA":                            "C",
		"Ciudad Autónoma de Buenos Aires": "C",
		"Entre Ríos":                      "E",
		"Entre R\uFFFDos":                 "E",
		"Entre Ros":                       "E",
		"Neuqun":                          "Q",
		"Crdoba":                          "X",
		"Tucumán":                         "T",
		"Río Negro":                       "R",
		"Santa Cruz":                      "Z",
		"Atlantis":                        "",
		"":                                "",
	}

	for in, want := range tests {
		assert.Equal(t, want, ProvinceCode(in), in)
	}
}
