package services

import (
	"context"
	"fmt"
	"strings"

	"shipping-tools/internal/domain"
	"shipping-tools/internal/platform/obs"
	"shipping-tools/internal/ports"

	"go.uber.org/zap"
)

// Column positions of the fields used for branch resolution in a sales
// export.
type OrderLayout struct {
	OrderID    int `yaml:"order_id"`
	Address    int `yaml:"address"`
	Locality   int `yaml:"locality"`
	City       int `yaml:"city"`
	PostalCode int `yaml:"postal_code"`
	Province   int `yaml:"province"`
}

// DefaultOrderLayout matches the storefront's order export.
func DefaultOrderLayout() OrderLayout {
	return OrderLayout{
		OrderID:    0,
		Address:    16,
		Locality:   19,
		City:       20,
		PostalCode: 21,
		Province:   22,
	}
}

// ResolveOrders looks up a branch code for every complete order line of a
// decoded sales export. Lookups already present in cache are reused and
// fresh ones are written back; a nil cache disables caching.
func ResolveOrders(
	ctx context.Context,
	text string,
	rules domain.FilterRules,
	layout OrderLayout,
	dir *Directory,
	cache ports.ResolutionCache,
	log *zap.Logger,
) (_ []domain.OrderResolution, err error) {
	if log == nil {
		log = zap.NewNop()
	}
	defer obs.Time(ctx, log, "orders.Resolve")(&err)

	if dir == nil {
		return nil, fmt.Errorf("resolve orders: directory is nil")
	}
	if rules.Delimiter == "" {
		return nil, fmt.Errorf("resolve orders: empty delimiter")
	}

	lines := strings.Split(text, "\n")
	out := make([]domain.OrderResolution, 0, len(lines))
	keys := make([]string, 0, len(lines))

	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}

		row := domain.ShipmentRow(strings.Split(strings.TrimRight(line, "\r"), rules.Delimiter))
		if reason := incompleteReason(row, rules); reason != "" {
			log.Debug("resolve orders: line skipped", zap.Int("line", i+1), zap.String("reason", reason))
			continue
		}

		locality := strings.TrimSpace(row.Field(layout.Locality))
		if locality == "" {
			locality = strings.TrimSpace(row.Field(layout.City))
		}

		r := domain.OrderResolution{
			Line:       i + 1,
			OrderID:    strings.TrimSpace(row.Field(layout.OrderID)),
			Locality:   locality,
			Province:   strings.TrimSpace(row.Field(layout.Province)),
			PostalCode: strings.TrimSpace(row.Field(layout.PostalCode)),
			Address:    strings.TrimSpace(row.Field(layout.Address)),
		}
		out = append(out, r)
		keys = append(keys, dir.QueryKey(r.Query()))
	}

	hits := map[string]domain.BranchMatch{}
	if cache != nil && len(keys) > 0 {
		hits, err = cache.GetMany(ctx, keys)
		if err != nil {
			return nil, fmt.Errorf("resolve orders: read cache: %w", err)
		}
	}

	fresh := make(map[string]domain.BranchMatch)
	for i := range out {
		key := keys[i]
		if m, ok := hits[key]; ok {
			out[i].Match = m
			out[i].Cached = true
			continue
		}
		if m, ok := fresh[key]; ok {
			out[i].Match = m
			continue
		}

		m := dir.Find(out[i].Query())
		out[i].Match = m
		if m.Found() {
			fresh[key] = m
		}
	}

	if cache != nil && len(fresh) > 0 {
		if err := cache.PutMany(ctx, fresh); err != nil {
			log.Warn("resolve orders: cache write failed", zap.Error(err))
		}
	}

	return out, nil
}
