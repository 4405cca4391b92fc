// Package branchdata holds the post-office branch listing compiled into
// the binaries. branches_gen.go is regenerated from the listing file.
package branchdata

import "shipping-tools/internal/domain"

//go:generate go run ../../cmd/shiptools branches generate --source ../../data/codigos_sucursales_correo_argentino.csv --out branches_gen.go

// All returns a copy of the embedded listing.
func All() []domain.Branch {
	out := make([]domain.Branch, len(Branches))
	copy(out, Branches)
	return out
}
