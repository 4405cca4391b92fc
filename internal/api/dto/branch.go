package dto

type BranchResponse struct {
	Code     string `json:"code"`
	Street   string `json:"street"`
	Number   string `json:"number"`
	Locality string `json:"locality"`
	Province string `json:"province"`
}

type ListBranchesResponse struct {
	Count    int              `json:"count"`
	Branches []BranchResponse `json:"branches"`
}

// Query parameters of GET /branches/lookup.
type LookupRequest struct {
	Locality   string `validate:"max=200"`
	Province   string `validate:"required,max=200"`
	PostalCode string `validate:"max=20"`
	Address    string `validate:"max=300"`
}

type LookupResponse struct {
	Code   string `json:"code"`
	Stage  string `json:"stage"`
	Found  bool   `json:"found"`
	Cached bool   `json:"cached"`
}
