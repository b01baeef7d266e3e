// Package sheets loads weekly devotional content from a published Google
// Sheets tab, fetched as a CSV export.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/slovoapp/slovo-server/internal/errors"
)

const defaultBaseURL = "https://docs.google.com"

// Row is one sheet row keyed by header column name.
type Row map[string]string

// Get returns the trimmed value of a column, or "" if absent.
func (r Row) Get(key string) string {
	return strings.TrimSpace(r[key])
}

// Client fetches the weekly content sheet.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sheetID    string
	gid        string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Google Docs base URL. Used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(base, "/")
	}
}

// NewClient creates a sheet client for one spreadsheet tab.
func NewClient(sheetID, gid string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: defaultBaseURL,
		sheetID: sheetID,
		gid:     gid,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchRows downloads the CSV export and returns all data rows keyed by
// the header row. Returns errors.ErrUnavailable when the sheet cannot be
// fetched and errors.ErrMalformed when the payload is not valid CSV.
func (c *Client) FetchRows(ctx context.Context) ([]Row, error) {
	params := url.Values{}
	params.Set("format", "csv")
	params.Set("gid", c.gid)
	exportURL := fmt.Sprintf("%s/spreadsheets/d/%s/export?%s", c.baseURL, c.sheetID, params.Encode())

	c.logger.Debug("fetching sheet", "url", exportURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "fetch sheet")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("fetch sheet: status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeMalformed, "parse sheet csv")
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[strings.TrimSpace(name)] = record[i]
			}
		}
		rows = append(rows, row)
	}

	c.logger.Debug("sheet fetched", "rows", len(rows))

	return rows, nil
}
