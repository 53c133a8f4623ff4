package client

import (
	"context"

	"github.com/betbot/gokraken/kraken/types"
)

// ExportRequest asks the exchange to prepare a trades or ledgers
// report for download.
type ExportRequest struct {
	Report      string // trades or ledgers
	Description string
	Format      string // CSV (default) or TSV
	Fields      string // comma-delimited, default all
	StartTm     int64  // unix, default start of account history
	EndTm       int64  // unix, default now
}

// AddExport queues a report export and returns its id.
func (c *Client) AddExport(ctx context.Context, req ExportRequest) (string, error) {
	if req.Format == "" {
		req.Format = "CSV"
	}
	params := Params{
		"report":      req.Report,
		"description": req.Description,
		"format":      req.Format,
		"fields":      req.Fields,
	}
	if req.StartTm > 0 {
		params["starttm"] = req.StartTm
	}
	if req.EndTm > 0 {
		params["endtm"] = req.EndTm
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := c.queryPrivate(ctx, "AddExport", 1, params, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// ExportStatus lists the processing state of queued exports of the
// given report type.
func (c *Client) ExportStatus(ctx context.Context, report string) ([]types.ExportReport, error) {
	var out []types.ExportReport
	if err := c.queryPrivate(ctx, "ExportStatus", 1, Params{"report": report}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RetrieveExport downloads a processed report as a raw archive. This
// endpoint answers with binary data instead of the JSON envelope;
// exchange errors still arrive as an envelope and surface as usual.
func (c *Client) RetrieveExport(ctx context.Context, id string) ([]byte, error) {
	return c.queryPrivateRaw(ctx, "RetrieveExport", 1, Params{"id": id})
}

// RemoveExport deletes or cancels a report. Use "cancel" for queued
// and processing reports, "delete" for processed ones.
func (c *Client) RemoveExport(ctx context.Context, id, removeType string) (*types.RemoveExportResult, error) {
	params := Params{"id": id, "type": removeType}
	out := &types.RemoveExportResult{}
	if err := c.queryPrivate(ctx, "RemoveExport", 1, params, out); err != nil {
		return nil, err
	}
	return out, nil
}
