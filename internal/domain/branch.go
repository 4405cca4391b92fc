package domain

// Represents a single post-office branch from the carrier's listing.
// A Branch is immutable once loaded; Code, Locality and Province are
// required for the record to enter a directory.
type Branch struct {
	Code     string `json:"code" yaml:"code" validate:"required"`
	Street   string `json:"street" yaml:"street"`
	Number   string `json:"number" yaml:"number"`
	Locality string `json:"locality" yaml:"locality" validate:"required"`
	Province string `json:"province" yaml:"province" validate:"required"`
}

// Input of a branch lookup. PostalCode is carried for callers but no
// matching stage uses it.
type BranchQuery struct {
	Locality   string
	Province   string
	PostalCode string
	Address    string
}

// Identifies which stage of the lookup cascade produced a code.
type MatchStage string

const (
	StageNone     MatchStage = "none"
	StageCapital  MatchStage = "capital"
	StageExact    MatchStage = "exact"
	StagePartial  MatchStage = "partial"
	StageBaseWord MatchStage = "base_word"
	StageProvince MatchStage = "province"
)

// Result of a branch lookup. An empty Code means no branch was found.
type BranchMatch struct {
	Code  string
	Stage MatchStage
}

func (m BranchMatch) Found() bool { return m.Code != "" }
