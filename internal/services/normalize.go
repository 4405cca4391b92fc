package services

import (
	"strings"
)

// UTF-8 accented letters that were decoded as Windows-1252/Latin-1 and
// re-encoded, turning each letter into a two-character sequence.
var mojibakeRepair = strings.NewReplacer(
	"Ã¡", "á",
	"Ã©", "é",
	"Ã­", "í",
	"Ã³", "ó",
	"Ãº", "ú",
	"Ã±", "ñ",
	"Ã\u0081", "Á",
	"Ã‰", "É",
	"Ã\u008d", "Í",
	"Ã“", "Ó",
	"Ãš", "Ú",
	"Ã‘", "Ñ",
)

var diacriticFold = strings.NewReplacer(
	"Á", "A", "À", "A", "Ä", "A", "Â", "A", "Ã", "A",
	"É", "E", "È", "E", "Ë", "E", "Ê", "E",
	"Í", "I", "Ì", "I", "Ï", "I", "Î", "I",
	"Ó", "O", "Ò", "O", "Ö", "O", "Ô", "O", "Õ", "O",
	"Ú", "U", "Ù", "U", "Ü", "U", "Û", "U",
	"Ñ", "N",
	"Ç", "C",
)

// NormalizeText returns the comparison form of s: trimmed, mis-decoded
// accents repaired, upper-cased and stripped of diacritics.
// Repair must run before folding; folding first would leave the broken
// sequences as "A" plus punctuation.
func NormalizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = mojibakeRepair.Replace(s)
	s = strings.ToUpper(s)
	return diacriticFold.Replace(s)
}

// NormalizeProvince normalizes a province name and maps known aliases
// (capital district, greater metro area) to their canonical province.
func NormalizeProvince(s string, aliases map[string]string) string {
	p := NormalizeText(s)
	if canonical, ok := aliases[p]; ok {
		return canonical
	}
	return p
}

// One-letter province codes used by the carrier's import format.
var provinceCodes = map[string]string{
	"SALTA":               "A",
	"BUENOS AIRES":        "B",
	"CAPITAL FEDERAL":     "C",
	"SAN LUIS":            "D",
	"ENTRE RIOS":          "E",
	"LA RIOJA":            "F",
	"SANTIAGO DEL ESTERO": "G",
	"CHACO":               "H",
	"SAN JUAN":            "J",
	"CATAMARCA":           "K",
	"LA PAMPA":            "L",
	"MENDOZA":             "M",
	"MISIONES":            "N",
	"FORMOSA":             "P",
	"NEUQUEN":             "Q",
	"RIO NEGRO":           "R",
	"SANTA FE":            "S",
	"TUCUMAN":             "T",
	"CHUBUT":              "U",
	"TIERRA DEL FUEGO":    "V",
	"CORRIENTES":          "W",
	"CORDOBA":             "X",
	"JUJUY":               "Y",
	"SANTA CRUZ":          "Z",

	"GRAN BUENOS AIRES":               "B",
	"CABA":                            "C",
	"CIUDAD AUTONOMA BUENOS AIRES":    "C",
	"CIUDAD AUTONOMA DE BUENOS AIRES": "C",
}

// Province names whose accented letter is commonly lost as U+FFFD or
// dropped outright by a bad decode, keyed by the damaged form.
var damagedProvinces = strings.NewReplacer(
	"ENTRE R\uFFFDOS", "ENTRE RIOS",
	"ENTRE ROS", "ENTRE RIOS",
	"C\uFFFDRDOBA", "CORDOBA",
	"CRDOBA", "CORDOBA",
	"NEUQU\uFFFDN", "NEUQUEN",
	"NEUQUN", "NEUQUEN",
	"TUCUM\uFFFDN", "TUCUMAN",
	"TUCUMN", "TUCUMAN",
	"R\uFFFDO NEGRO", "RIO NEGRO",
	"RO NEGRO", "RIO NEGRO",
)

// ProvinceCode returns the carrier's one-letter code for a province name,
// or "" when the name is not recognized. Names containing a known
// province (e.g. "PROVINCIA DE BUENOS AIRES") also resolve.
func ProvinceCode(name string) string {
	n := damagedProvinces.Replace(NormalizeText(name))
	if n == "" {
		return ""
	}

	if code, ok := provinceCodes[n]; ok {
		return code
	}

	// Longest key first so "GRAN BUENOS AIRES" wins over "BUENOS AIRES".
	bestKey := ""
	for key := range provinceCodes {
		if !strings.Contains(n, key) {
			continue
		}
		if len(key) > len(bestKey) || (len(key) == len(bestKey) && key < bestKey) {
			bestKey = key
		}
	}
	if bestKey == "" {
		return ""
	}
	return provinceCodes[bestKey]
}
