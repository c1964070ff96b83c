package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/catalog"
	"go.uber.org/zap"
)

// maxUploadBytes caps admin upload bodies.
const maxUploadBytes = 8 << 20

// handleUploadCSV implements POST /admin/upload_csv?key=. The body is the
// CSV file itself; a successful parse atomically replaces the catalog and
// returns the per-row import report.
func (d *Dependencies) handleUploadCSV(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Could not read upload body"})
		return
	}

	records, skipped, err := catalog.ParseCSV(bytes.NewReader(body))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Not a usable CSV file: " + err.Error()})
		return
	}
	if len(records) == 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Upload contained no usable rows"})
		return
	}

	d.Catalog.Swap(catalog.New(records, catalog.SourceAdmin))
	d.Logger.Info("catalog replaced by admin csv upload",
		zap.Int("accepted", len(records)),
		zap.Int("skipped", len(skipped)),
	)

	writeJSON(w, http.StatusOK, UploadResp{
		Status: "replaced",
		Report: &catalog.Report{SourceTag: catalog.SourceAdmin, Accepted: len(records), Skipped: skipped},
	})
}

// handleUploadJSON implements POST /admin/upload_json?key=: same contract
// as the CSV upload but with a JSON array body.
func (d *Dependencies) handleUploadJSON(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Could not read upload body"})
		return
	}

	var raw []catalog.ServiceRecord
	if err := json.Unmarshal(body, &raw); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Not a usable JSON array: " + err.Error()})
		return
	}

	var records []catalog.ServiceRecord
	var skipped []catalog.SkippedRow
	for i, rec := range raw {
		if rec.Name == "" {
			skipped = append(skipped, catalog.SkippedRow{Line: i + 1, Reason: "missing name"})
			continue
		}
		rec.Slug = catalog.Slugify(rec.Name)
		records = append(records, rec)
	}
	if len(records) == 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Upload contained no usable records"})
		return
	}

	d.Catalog.Swap(catalog.New(records, catalog.SourceAdmin))
	d.Logger.Info("catalog replaced by admin json upload",
		zap.Int("accepted", len(records)),
		zap.Int("skipped", len(skipped)),
	)

	writeJSON(w, http.StatusOK, UploadResp{
		Status: "replaced",
		Report: &catalog.Report{SourceTag: catalog.SourceAdmin, Accepted: len(records), Skipped: skipped},
	})
}
