package services

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"shipping-tools/internal/domain"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// Branch fields precomputed in comparison form.
type directoryEntry struct {
	branch    domain.Branch
	locality  string
	province  string
	street    string
	firstWord string
}

// Lookup input in comparison form, plus the raw values the capital
// shortcut inspects.
type normalizedQuery struct {
	raw       domain.BranchQuery
	locality  string
	province  string
	address   string
	firstWord string
	words     int
}

// One step of the lookup cascade. A stage runs only when applies allows
// it; the first stage whose match yields candidates decides the code.
type lookupStage struct {
	name    domain.MatchStage
	applies func(q *normalizedQuery) bool
	match   func(q *normalizedQuery, e *directoryEntry) bool
	pick    func(q *normalizedQuery, matches []*directoryEntry) string
}

// Directory is a read-only, ordered set of branches with the lookup
// cascade over it. It is safe for concurrent use once built.
type Directory struct {
	entries     []directoryEntry
	rules       domain.LookupRules
	preferred   map[string]struct{}
	problematic map[string]struct{}
	stages      []lookupStage
	fingerprint string
	log         *zap.Logger
}

// NewDirectory indexes branches in load order. Records missing a code,
// locality or province are left out. Province aliases apply to queries
// only; a branch keeps its own normalized province.
func NewDirectory(branches []domain.Branch, rules domain.LookupRules, log *zap.Logger) *Directory {
	if log == nil {
		log = zap.NewNop()
	}

	d := &Directory{
		entries:     make([]directoryEntry, 0, len(branches)),
		rules:       rules,
		preferred:   toSet(rules.PreferredCodes),
		problematic: toSet(rules.ProblematicCodes),
		log:         log,
	}

	for _, b := range branches {
		if strings.TrimSpace(b.Code) == "" ||
			strings.TrimSpace(b.Locality) == "" ||
			strings.TrimSpace(b.Province) == "" {
			continue
		}

		loc := NormalizeText(b.Locality)
		d.entries = append(d.entries, directoryEntry{
			branch:    b,
			locality:  loc,
			province:  NormalizeText(b.Province),
			street:    NormalizeText(b.Street),
			firstWord: firstWord(loc),
		})
	}

	d.fingerprint = fingerprint(d.entries, rules)

	d.stages = []lookupStage{
		{
			name: domain.StageExact,
			match: func(q *normalizedQuery, e *directoryEntry) bool {
				return e.locality == q.locality && e.province == q.province
			},
			pick: d.disambiguate,
		},
		{
			name:    domain.StagePartial,
			applies: func(q *normalizedQuery) bool { return q.words == 1 },
			match: func(q *normalizedQuery, e *directoryEntry) bool {
				if e.province != q.province {
					return false
				}
				return strings.Contains(e.locality, q.locality) || q.locality == e.firstWord
			},
			pick: d.disambiguate,
		},
		{
			name:    domain.StageBaseWord,
			applies: func(q *normalizedQuery) bool { return utf8.RuneCountInString(q.firstWord) > 3 },
			match: func(q *normalizedQuery, e *directoryEntry) bool {
				return e.firstWord == q.firstWord && e.province == q.province
			},
			pick: pickFirst,
		},
		{
			name: domain.StageProvince,
			match: func(q *normalizedQuery, e *directoryEntry) bool {
				return e.province == q.province
			},
			pick: pickFirst,
		},
	}

	return d
}

// Len reports the number of indexed branches.
func (d *Directory) Len() int { return len(d.entries) }

// Branches returns the indexed branches in load order.
func (d *Directory) Branches() []domain.Branch {
	out := make([]domain.Branch, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e.branch)
	}
	return out
}

// Rules returns the tables the directory was built with.
func (d *Directory) Rules() domain.LookupRules { return d.rules }

// Find resolves a query to a branch code through the cascade:
// capital shortcut, exact, partial, base word, then province only.
// An empty Code means nothing matched.
func (d *Directory) Find(q domain.BranchQuery) domain.BranchMatch {
	nq := d.normalizeQuery(q)

	if d.isCapital(nq) {
		d.log.Debug("branch lookup: capital shortcut",
			zap.String("locality", q.Locality),
			zap.String("province", q.Province),
			zap.String("code", d.rules.CapitalCode),
		)
		return domain.BranchMatch{Code: d.rules.CapitalCode, Stage: domain.StageCapital}
	}

	for _, st := range d.stages {
		if st.applies != nil && !st.applies(nq) {
			continue
		}

		matches := d.filter(nq, st.match)
		if len(matches) == 0 {
			continue
		}

		code := st.pick(nq, matches)
		d.log.Debug("branch lookup: matched",
			zap.String("stage", string(st.name)),
			zap.String("locality", nq.locality),
			zap.String("province", nq.province),
			zap.Int("candidates", len(matches)),
			zap.String("code", code),
		)
		return domain.BranchMatch{Code: code, Stage: st.name}
	}

	d.log.Info("branch lookup: no branch found",
		zap.String("locality", q.Locality),
		zap.String("province", q.Province),
	)
	return domain.BranchMatch{Stage: domain.StageNone}
}

// FindBranchCode looks up a branch code in branches using the default
// rules. It returns "" when no branch matches.
func FindBranchCode(locality, province, postalCode, address string, branches []domain.Branch) string {
	d := NewDirectory(branches, DefaultLookupRules(), nil)
	return d.Find(domain.BranchQuery{
		Locality:   locality,
		Province:   province,
		PostalCode: postalCode,
		Address:    address,
	}).Code
}

// Fingerprint identifies the indexed branches and rule tables. Two
// directories with the same fingerprint answer every query the same way.
func (d *Directory) Fingerprint() string { return d.fingerprint }

// QueryKey returns a cache key for q in comparison form, prefixed with the
// directory fingerprint so results cached under other branches or rules
// are never reused.
func (d *Directory) QueryKey(q domain.BranchQuery) string {
	nq := d.normalizeQuery(q)
	return d.fingerprint + "|" + nq.locality + "|" + nq.province + "|" + nq.address
}

func (d *Directory) normalizeQuery(q domain.BranchQuery) *normalizedQuery {
	loc := NormalizeText(q.Locality)
	return &normalizedQuery{
		raw:       q,
		locality:  loc,
		province:  NormalizeProvince(q.Province, d.rules.ProvinceAliases),
		address:   NormalizeText(q.Address),
		firstWord: firstWord(loc),
		words:     len(strings.Fields(loc)),
	}
}

// isCapital reports whether both locality and province independently name
// the capital city, in normalized form or in the raw input.
func (d *Directory) isCapital(q *normalizedQuery) bool {
	if d.rules.CapitalCode == "" || d.rules.CapitalName == "" {
		return false
	}
	return d.namesCapital(q.locality, q.raw.Locality) && d.namesCapital(q.province, q.raw.Province)
}

func (d *Directory) namesCapital(normalized, raw string) bool {
	name := d.rules.CapitalName
	if normalized == name || strings.Contains(normalized, name) {
		return true
	}

	lower := strings.ToLower(raw)
	for _, spelling := range d.rules.CapitalSpellings {
		if spelling != "" && strings.Contains(lower, strings.ToLower(spelling)) {
			return true
		}
	}
	return false
}

func (d *Directory) filter(q *normalizedQuery, match func(*normalizedQuery, *directoryEntry) bool) []*directoryEntry {
	var out []*directoryEntry
	for i := range d.entries {
		if match(q, &d.entries[i]) {
			out = append(out, &d.entries[i])
		}
	}
	return out
}

// disambiguate picks one code among exact or partial matches: street
// match against the requested address, then the preferred code, then the
// first code that is not known to be problematic, then the first match.
func (d *Directory) disambiguate(q *normalizedQuery, matches []*directoryEntry) string {
	if q.address != "" && len(matches) > 1 {
		for _, e := range matches {
			if e.street == "" {
				continue
			}
			if strings.Contains(q.address, e.street) || strings.Contains(e.street, q.address) {
				return e.branch.Code
			}
		}
	}

	for _, e := range matches {
		if _, ok := d.preferred[e.branch.Code]; ok {
			return e.branch.Code
		}
	}

	if len(matches) > 1 && d.anyProblematic(matches) {
		for _, e := range matches {
			if _, bad := d.problematic[e.branch.Code]; !bad {
				return e.branch.Code
			}
		}
	}

	return matches[0].branch.Code
}

func (d *Directory) anyProblematic(matches []*directoryEntry) bool {
	for _, e := range matches {
		if _, ok := d.problematic[e.branch.Code]; ok {
			return true
		}
	}
	return false
}

func fingerprint(entries []directoryEntry, rules domain.LookupRules) string {
	h := xxhash.New()
	write := func(parts ...string) {
		for _, p := range parts {
			_, _ = h.WriteString(p)
			_, _ = h.WriteString("\x1f")
		}
		_, _ = h.WriteString("\x1e")
	}

	for _, e := range entries {
		b := e.branch
		write(b.Code, b.Street, b.Number, b.Locality, b.Province)
	}

	aliases := make([]string, 0, len(rules.ProvinceAliases))
	for k := range rules.ProvinceAliases {
		aliases = append(aliases, k)
	}
	slices.Sort(aliases)
	for _, k := range aliases {
		write("alias", k, rules.ProvinceAliases[k])
	}

	write("capital", rules.CapitalName, rules.CapitalCode)
	write(rules.CapitalSpellings...)
	write(rules.PreferredCodes...)
	write(rules.ProblematicCodes...)

	return strconv.FormatUint(h.Sum64(), 16)
}

func pickFirst(_ *normalizedQuery, matches []*directoryEntry) string {
	return matches[0].branch.Code
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
