package domain

// Static tables driving the branch lookup cascade.
type LookupRules struct {
	// Canonical province for each normalized alias.
	ProvinceAliases map[string]string `yaml:"province_aliases"`

	// Capital-city shortcut: normalized name, raw lower-case spellings
	// (accented and plain) and the code of the city's main branch.
	CapitalName      string   `yaml:"capital_name"`
	CapitalSpellings []string `yaml:"capital_spellings"`
	CapitalCode      string   `yaml:"capital_code"`

	PreferredCodes   []string `yaml:"preferred_codes"`
	ProblematicCodes []string `yaml:"problematic_codes"`
}

// Static tables driving the shipment row filter.
type FilterRules struct {
	Delimiter       string   `yaml:"delimiter"`
	MinFields       int      `yaml:"min_fields"`
	KeyField        int      `yaml:"key_field"`
	Carrier         string   `yaml:"carrier"`
	MethodPhrases   []string `yaml:"method_phrases"`
	FreeShipPhrases []string `yaml:"free_shipping_phrases"`
}
