package handlers

import (
	"net/http"
	"strings"

	"shipping-tools/internal/api/dto"
	"shipping-tools/internal/domain"
	"shipping-tools/internal/platform/obs"
	"shipping-tools/internal/ports"
	"shipping-tools/internal/services"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// BranchHandler exposes the read-only branch directory.
type BranchHandler struct {
	Dir   *services.Directory
	Cache ports.ResolutionCache
}

func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	branches := h.Dir.Branches()
	res := dto.ListBranchesResponse{
		Count:    len(branches),
		Branches: make([]dto.BranchResponse, 0, len(branches)),
	}
	for _, b := range branches {
		res.Branches = append(res.Branches, dto.BranchResponse{
			Code:     b.Code,
			Street:   b.Street,
			Number:   b.Number,
			Locality: b.Locality,
			Province: b.Province,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Lookup resolves locality/province/address query parameters to a branch
// code. A miss is a 200 with found=false.
func (h *BranchHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	qs := r.URL.Query()
	req := dto.LookupRequest{
		Locality:   strings.TrimSpace(qs.Get("locality")),
		Province:   strings.TrimSpace(qs.Get("province")),
		PostalCode: strings.TrimSpace(qs.Get("postal_code")),
		Address:    strings.TrimSpace(qs.Get("address")),
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	q := domain.BranchQuery{
		Locality:   req.Locality,
		Province:   req.Province,
		PostalCode: req.PostalCode,
		Address:    req.Address,
	}
	log := obs.Logger(r.Context())

	key := h.Dir.QueryKey(q)
	if h.Cache != nil {
		hits, err := h.Cache.GetMany(r.Context(), []string{key})
		if err != nil {
			log.Warn("branch lookup: cache read failed", zap.Error(err))
		} else if m, ok := hits[key]; ok {
			writeJSON(w, r, http.StatusOK, lookupResponse(m, true))
			return
		}
	}

	m := h.Dir.Find(q)
	if h.Cache != nil && m.Found() {
		if err := h.Cache.PutMany(r.Context(), map[string]domain.BranchMatch{key: m}); err != nil {
			log.Warn("branch lookup: cache write failed", zap.Error(err))
		}
	}

	writeJSON(w, r, http.StatusOK, lookupResponse(m, false))
}

func lookupResponse(m domain.BranchMatch, cached bool) dto.LookupResponse {
	return dto.LookupResponse{
		Code:   m.Code,
		Stage:  string(m.Stage),
		Found:  m.Found(),
		Cached: cached,
	}
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	if fe.Field() == "PostalCode" {
		field = "postal_code"
	}
	if fe.Tag() == "required" {
		return field + " is required"
	}
	return field + " is too long"
}
