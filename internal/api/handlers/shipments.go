package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"shipping-tools/internal/adapters/textenc"
	"shipping-tools/internal/domain"
	"shipping-tools/internal/platform/obs"
	"shipping-tools/internal/services"

	"go.uber.org/zap"
)

const maxExportBytes = 32 << 20

// Response headers carrying the filter counts.
const (
	HeaderRowsConsidered = "X-Rows-Considered"
	HeaderRowsAccepted   = "X-Rows-Accepted"
	HeaderRowsWritten    = "X-Rows-Written"
	HeaderRowsSkipped    = "X-Rows-Skipped"
)

type ShipmentHandler struct {
	Rules           domain.FilterRules
	DefaultEncoding string
}

// Filter cleans a raw sales export posted as the request body and returns
// the kept lines as UTF-8 CSV. Query parameters: encoding (source
// encoding) and bom (prefix the output with a UTF-8 byte order mark).
func (h *ShipmentHandler) Filter(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}
	defer r.Body.Close()

	enc := strings.TrimSpace(r.URL.Query().Get("encoding"))
	if enc == "" {
		enc = h.DefaultEncoding
	}

	bom := false
	if v := r.URL.Query().Get("bom"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "bom must be a boolean")
			return
		}
		bom = b
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxExportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "export too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "could not read body")
		return
	}

	text, err := textenc.Decode(raw, enc)
	if err != nil {
		if errors.Is(err, textenc.ErrUnknownEncoding) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, r, http.StatusUnprocessableEntity, "could not decode export")
		return
	}

	log := obs.Logger(r.Context())
	res, err := services.FilterShipments(text, h.Rules, log)
	if err != nil {
		log.Error("filter shipments failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	hdr := w.Header()
	hdr.Set("Content-Type", "text/csv; charset=utf-8")
	hdr.Set(HeaderRowsConsidered, strconv.Itoa(res.Considered))
	hdr.Set(HeaderRowsAccepted, strconv.Itoa(res.Accepted))
	hdr.Set(HeaderRowsWritten, strconv.Itoa(res.Written))
	hdr.Set(HeaderRowsSkipped, strconv.Itoa(len(res.Skipped)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(textenc.Encode(res.Output, bom)); err != nil {
		log.Warn("write filtered export failed", zap.Error(err))
	}
}
