package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"shipping-tools/internal/adapters/cache"
	"shipping-tools/internal/api/dto"
	"shipping-tools/internal/api/handlers"
	"shipping-tools/internal/domain"
	"shipping-tools/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (http.Handler, *cache.MemoryResolutionCache) {
	t.Helper()
	dir := services.NewDirectory([]domain.Branch{
		{Code: "XYZ", Street: "Córdoba", Number: "1", Locality: "Rosario", Province: "Santa Fe"},
		{Code: "MZA", Street: "San Martín", Number: "2", Locality: "Mendoza", Province: "Mendoza"},
	}, services.DefaultLookupRules(), nil)
	c := cache.NewMemoryResolutionCache()
	return NewRouter(dir, c, services.DefaultFilterRules(), zap.NewNop()), c
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(t, h, http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestListBranches(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/branches", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListBranchesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "XYZ", res.Branches[0].Code)
	assert.Equal(t, "Rosario", res.Branches[0].Locality)
}

func TestLookup(t *testing.T) {
	h, c := newTestRouter(t)
	target := "/branches/lookup?" + url.Values{
		"locality":    {"Rosario"},
		"province":    {"Santa Fe"},
		"postal_code": {"2000"},
	}.Encode()

	rec := do(t, h, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.LookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, dto.LookupResponse{Code: "XYZ", Stage: "exact", Found: true}, res)
	assert.Equal(t, 1, c.Len())

	rec = do(t, h, http.MethodGet, target, "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Cached)
	assert.Equal(t, "XYZ", res.Code)
}

func TestLookupCapitalAndMiss(t *testing.T) {
	h, c := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/branches/lookup?locality=C%C3%B3rdoba&province=C%C3%B3rdoba", "")
	var res dto.LookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "XFZ", res.Code)
	assert.Equal(t, "capital", res.Stage)

	rec = do(t, h, http.MethodGet, "/branches/lookup?locality=Nada&province=Atlantis", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Found)
	assert.Equal(t, "", res.Code)
	assert.Equal(t, 1, c.Len(), "misses are not cached")
}

func TestLookupValidation(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/branches/lookup?locality=Rosario", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"province is required"}`, rec.Body.String())
}

func TestFilterShipments(t *testing.T) {
	h, _ := newTestRouter(t)

	header := "Orden;Email;Fecha;Estado;Moneda;Subtotal;Descuento;Envio;Total;Nombre;Medio de env\xedo"
	free := "1;a@b.c;01/02/2024;x;ARS;1;0;0;1;Ana;Env\xedo Gratis"
	pickup := "2;a@b.c;01/02/2024;x;ARS;1;0;0;1;Luis;Retiro"
	short := "2;;;"
	body := strings.Join([]string{header, free, pickup, short}, "\r\n")

	rec := do(t, h, http.MethodPost, "/shipments/filter", body)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "2", rec.Header().Get(handlers.HeaderRowsConsidered))
	assert.Equal(t, "1", rec.Header().Get(handlers.HeaderRowsAccepted))
	assert.Equal(t, "1", rec.Header().Get(handlers.HeaderRowsWritten))
	assert.Equal(t, "1", rec.Header().Get(handlers.HeaderRowsSkipped))

	out := rec.Body.String()
	assert.Contains(t, out, "Medio de envío")
	assert.Contains(t, out, "Ana;Envío Gratis")
	assert.NotContains(t, out, "Retiro")
}

func TestFilterShipmentsOptions(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/shipments/filter?encoding=utf-8&bom=true", "título")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "\xEF\xBB\xBFtítulo", rec.Body.String())

	rec = do(t, h, http.MethodPost, "/shipments/filter?encoding=klingon", "x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/shipments/filter?bom=maybe", "x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/shipments/filter", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
