package services

import "shipping-tools/internal/domain"

// DefaultLookupRules returns the built-in lookup tables.
func DefaultLookupRules() domain.LookupRules {
	return domain.LookupRules{
		ProvinceAliases: map[string]string{
			"GRAN BUENOS AIRES":               "BUENOS AIRES",
			"CAPITAL FEDERAL":                 "BUENOS AIRES",
			"CABA":                            "BUENOS AIRES",
			"CIUDAD AUTONOMA BUENOS AIRES":    "BUENOS AIRES",
			"CIUDAD AUTONOMA DE BUENOS AIRES": "BUENOS AIRES",
		},
		CapitalName:      "CORDOBA",
		CapitalSpellings: []string{"cordoba", "córdoba"},
		CapitalCode:      "XFZ",
		PreferredCodes:   []string{"XFZ"},
	}
}

// DefaultFilterRules returns the built-in sales-export filter tables.
func DefaultFilterRules() domain.FilterRules {
	return domain.FilterRules{
		Delimiter:       ";",
		MinFields:       10,
		KeyField:        2,
		Carrier:         "Andreani Estandar",
		MethodPhrases:   []string{"a domicilio"},
		FreeShipPhrases: []string{"Envio Gratis", "Envo Gratis"},
	}
}
