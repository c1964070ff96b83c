package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// Source tags reported by the loader.
const (
	SourceRemoteCSV = "remote_csv"
	SourceLocalCSV  = "local_csv"
	SourceLocalJSON = "local_json"
	SourceFallback  = "fallback"
	SourceAdmin     = "admin_upload"
)

// Loader resolves the service catalog from the first source in its priority
// chain that yields at least one record: remote CSV over HTTP, local CSV
// file, local JSON file, then the hard-coded fallback records. The service
// never fails to start for lack of data.
type Loader struct {
	RemoteURL string
	CSVPath   string
	JSONPath  string
	Client    *http.Client
	Logger    *zap.Logger
}

// Load runs the source chain and returns the winning snapshot plus its
// import report. Errors along the chain are logged and swallowed.
func (l *Loader) Load(ctx context.Context) (*Catalog, *Report) {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if l.RemoteURL != "" {
		records, skipped, err := l.loadRemote(ctx)
		if err != nil {
			logger.Warn("remote csv load failed, falling back",
				zap.String("url", l.RemoteURL),
				zap.Error(err),
			)
		} else if len(records) > 0 {
			return New(records, SourceRemoteCSV), &Report{SourceTag: SourceRemoteCSV, Accepted: len(records), Skipped: skipped}
		}
	}

	if l.CSVPath != "" {
		records, skipped, err := loadCSVFile(l.CSVPath)
		if err != nil {
			logger.Warn("local csv load failed, falling back",
				zap.String("path", l.CSVPath),
				zap.Error(err),
			)
		} else if len(records) > 0 {
			return New(records, SourceLocalCSV), &Report{SourceTag: SourceLocalCSV, Accepted: len(records), Skipped: skipped}
		}
	}

	if l.JSONPath != "" {
		records, skipped, err := loadJSONFile(l.JSONPath)
		if err != nil {
			logger.Warn("local json load failed, falling back",
				zap.String("path", l.JSONPath),
				zap.Error(err),
			)
		} else if len(records) > 0 {
			return New(records, SourceLocalJSON), &Report{SourceTag: SourceLocalJSON, Accepted: len(records), Skipped: skipped}
		}
	}

	records := FallbackRecords()
	logger.Info("using hard-coded fallback records", zap.Int("count", len(records)))
	return New(records, SourceFallback), &Report{SourceTag: SourceFallback, Accepted: len(records)}
}

func (l *Loader) loadRemote(ctx context.Context) ([]ServiceRecord, []SkippedRow, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.RemoteURL, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("remote csv: unexpected status %d", resp.StatusCode)
	}
	return ParseCSV(resp.Body)
}

func loadCSVFile(path string) ([]ServiceRecord, []SkippedRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return ParseCSV(bytes.NewReader(data))
}

// loadJSONFile reads a JSON array of records. Records without a name are
// discarded; slugs are (re)derived from the name so hand-edited files do
// not need to carry them.
func loadJSONFile(path string) ([]ServiceRecord, []SkippedRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var raw []ServiceRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var records []ServiceRecord
	var skipped []SkippedRow
	for i, r := range raw {
		if r.Name == "" {
			skipped = append(skipped, SkippedRow{Line: i + 1, Reason: "missing name"})
			continue
		}
		r.Slug = Slugify(r.Name)
		records = append(records, r)
	}
	return records, skipped, nil
}
