package api

import (
	"net/http"
	"strings"

	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/eventlog"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const posterQRSize = 512

// handlePoster implements GET /poster/{slug} (optionally with a .png
// suffix): a QR code PNG pointing at the service's website, or at its
// detail page when no website is listed. Meant for printed flyers.
func (d *Dependencies) handlePoster(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSuffix(r.PathValue("slug"), ".png")
	rec, ok := d.Catalog.Current().BySlug(slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResp{Detail: "Service not found"})
		return
	}

	target := rec.Website
	if target == "" {
		target = strings.TrimRight(d.BaseURL, "/") + "/services/" + rec.Slug
	}

	png, err := qrcode.Encode(target, qrcode.Medium, posterQRSize)
	if err != nil {
		d.Logger.Error("qr encode failed", zap.String("slug", slug), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResp{Detail: "Could not render poster"})
		return
	}

	d.Events.Record(eventlog.TypeQRScan, slug, map[string]string{"target": target})
	w.Header().Set("Content-Type", "image/png")
	w.Write(png) //nolint:errcheck
}
