package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"shipping-tools/internal/adapters/cache"
	"shipping-tools/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderLine(id, address, locality, city, postal, province string) string {
	fields := make([]string, 25)
	fields[0] = id
	fields[2] = "01/02/2024"
	fields[16] = address
	fields[19] = locality
	fields[20] = city
	fields[21] = postal
	fields[22] = province
	fields[24] = "Andreani Estandar a domicilio"
	return strings.Join(fields, ";")
}

func orderExport(lines ...string) string {
	return strings.Join(append([]string{"header"}, lines...), "\n")
}

type failingCache struct {
	getErr error
	putErr error
}

func (f failingCache) GetMany(context.Context, []string) (map[string]domain.BranchMatch, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return map[string]domain.BranchMatch{}, nil
}

func (f failingCache) PutMany(context.Context, map[string]domain.BranchMatch) error {
	return f.putErr
}

func TestResolveOrders(t *testing.T) {
	dir := NewDirectory(testBranches, DefaultLookupRules(), nil)
	text := orderExport(
		orderLine("1001", "Belgrano 250", "Lanús", "", "1824", "Buenos Aires"),
		"1001;;;;;;;;",
		orderLine("1002", "", "", "Rosario", "2000", "Santa Fe"),
		"",
		orderLine("1003", "", "Nowhere", "", "", "Atlantis"),
	)

	got, err := ResolveOrders(context.Background(), text, DefaultFilterRules(), DefaultOrderLayout(), dir, nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, 2, got[0].Line)
	assert.Equal(t, "1001", got[0].OrderID)
	assert.Equal(t, "1824", got[0].PostalCode)
	assert.Equal(t, domain.BranchMatch{Code: "QZB", Stage: domain.StagePartial}, got[0].Match)

	assert.Equal(t, "Rosario", got[1].Locality, "city column fills an empty locality")
	assert.Equal(t, "RBA", got[1].Match.Code)

	assert.False(t, got[2].Match.Found())
}

func TestResolveOrdersUsesCache(t *testing.T) {
	ctx := context.Background()
	dir := NewDirectory(testBranches, DefaultLookupRules(), nil)
	c := cache.NewMemoryResolutionCache()

	text := orderExport(
		orderLine("1", "", "Rosario", "", "", "Santa Fe"),
		orderLine("2", "", "rosario", "", "", "SANTA FE"),
		orderLine("3", "", "Nowhere", "", "", "Atlantis"),
	)

	first, err := ResolveOrders(ctx, text, DefaultFilterRules(), DefaultOrderLayout(), dir, c, nil)
	require.NoError(t, err)
	require.Len(t, first, 3)
	for _, r := range first {
		assert.False(t, r.Cached)
	}
	assert.Equal(t, 1, c.Len(), "same query stored once, misses not stored")

	second, err := ResolveOrders(ctx, text, DefaultFilterRules(), DefaultOrderLayout(), dir, c, nil)
	require.NoError(t, err)
	assert.True(t, second[0].Cached)
	assert.True(t, second[1].Cached)
	assert.False(t, second[2].Cached)
	assert.Equal(t, "RBA", second[1].Match.Code)
}

func TestResolveOrdersIgnoresCacheOfOtherDirectory(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryResolutionCache()
	text := orderExport(orderLine("1", "", "Moreno", "", "", "Buenos Aires"))
	laPlata := domain.Branch{Code: "BLP", Locality: "La Plata", Province: "Buenos Aires"}

	before := NewDirectory([]domain.Branch{laPlata}, DefaultLookupRules(), nil)
	got, err := ResolveOrders(ctx, text, DefaultFilterRules(), DefaultOrderLayout(), before, c, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BranchMatch{Code: "BLP", Stage: domain.StageProvince}, got[0].Match)

	after := NewDirectory([]domain.Branch{
		laPlata,
		{Code: "BMO", Locality: "Moreno", Province: "Buenos Aires"},
	}, DefaultLookupRules(), nil)
	got, err = ResolveOrders(ctx, text, DefaultFilterRules(), DefaultOrderLayout(), after, c, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BranchMatch{Code: "BMO", Stage: domain.StageExact}, got[0].Match)
	assert.False(t, got[0].Cached)

	rules := DefaultLookupRules()
	rules.PreferredCodes = []string{"BLP"}
	got, err = ResolveOrders(ctx, text, DefaultFilterRules(), DefaultOrderLayout(), NewDirectory([]domain.Branch{laPlata}, rules, nil), c, nil)
	require.NoError(t, err)
	assert.False(t, got[0].Cached, "changed rules do not reuse cached lookups")
}

func TestResolveOrdersCacheErrors(t *testing.T) {
	ctx := context.Background()
	dir := NewDirectory(testBranches, DefaultLookupRules(), nil)
	text := orderExport(orderLine("1", "", "Rosario", "", "", "Santa Fe"))

	_, err := ResolveOrders(ctx, text, DefaultFilterRules(), DefaultOrderLayout(), dir, failingCache{getErr: errors.New("boom")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read cache")

	got, err := ResolveOrders(ctx, text, DefaultFilterRules(), DefaultOrderLayout(), dir, failingCache{putErr: errors.New("boom")}, nil)
	require.NoError(t, err, "a failed cache write does not fail the run")
	assert.Equal(t, "RBA", got[0].Match.Code)
}

func TestResolveOrdersRequiresDirectory(t *testing.T) {
	_, err := ResolveOrders(context.Background(), "header", DefaultFilterRules(), DefaultOrderLayout(), nil, nil, nil)
	assert.Error(t, err)
}
