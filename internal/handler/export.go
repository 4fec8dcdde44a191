package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vitrine/internal/export"
	"vitrine/internal/service"
)

// QRHandler renders the listing's public URL as a PNG QR code.
func QRHandler(propertySvc *service.PropertyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := propertySvc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, service.ErrPropertyNotFound) {
				respondError(w, http.StatusNotFound, "listing not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if p.PublicURL == "" {
			respondError(w, http.StatusConflict, "listing has no landing page yet")
			return
		}

		png, err := export.QRPNG(p.PublicURL)
		if err != nil {
			slog.Error("qr export failed", "property", p.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}
}

// PDFHandler renders a one-page PDF sheet for the listing.
func PDFHandler(propertySvc *service.PropertyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := propertySvc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, service.ErrPropertyNotFound) {
				respondError(w, http.StatusNotFound, "listing not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		pdf, err := export.ListingPDF(p, p.PublicURL)
		if err != nil {
			slog.Error("pdf export failed", "property", p.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="listing.pdf"`)
		w.Write(pdf)
	}
}
