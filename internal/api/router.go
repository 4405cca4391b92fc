package api

import (
	"net/http"

	"shipping-tools/internal/api/handlers"
	"shipping-tools/internal/domain"
	"shipping-tools/internal/ports"
	"shipping-tools/internal/services"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// cache may be nil.
func NewRouter(dir *services.Directory, cache ports.ResolutionCache, filter domain.FilterRules, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	mux := http.NewServeMux()

	branchHandler := &handlers.BranchHandler{Dir: dir, Cache: cache}
	shipmentHandler := &handlers.ShipmentHandler{Rules: filter, DefaultEncoding: "windows-1252"}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/branches", branchHandler.List)
	mux.HandleFunc("/branches/lookup", branchHandler.Lookup)
	mux.HandleFunc("/shipments/filter", shipmentHandler.Filter)

	return loggingMiddleware(log, mux)
}
