package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/renato0307/hotline/internal/adapters/httpapi"
	"github.com/renato0307/hotline/internal/domain"
)

func filterQuery(filter domain.LogFilter) url.Values {
	q := url.Values{}
	if filter.HookType != "" {
		q.Set("hookType", string(filter.HookType))
	}
	if filter.SessionID != "" {
		q.Set("sessionId", filter.SessionID)
	}
	if filter.Keyword != "" {
		q.Set("keyword", filter.Keyword)
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}
	return q
}

// RecordLog appends an entry to the server's ledger
func (c *Client) RecordLog(ctx context.Context, input domain.LogInput) (domain.LogEntry, error) {
	req := httpapi.LogRequest{
		HookType:  string(input.HookType),
		Message:   input.Message,
		SessionID: input.SessionID,
		ToolName:  input.ToolName,
	}
	var rsp httpapi.LogResponse
	if err := c.do(ctx, http.MethodPost, "/api/logs", nil, req, &rsp); err != nil {
		return domain.LogEntry{}, err
	}
	return rsp.Log, nil
}

// Logs lists entries newest first
func (c *Client) Logs(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error) {
	var entries []domain.LogEntry
	err := c.do(ctx, http.MethodGet, "/api/logs", filterQuery(filter), nil, &entries)
	return entries, err
}

// Log fetches a single entry
func (c *Client) Log(ctx context.Context, id int64) (domain.LogEntry, error) {
	var entry domain.LogEntry
	err := c.do(ctx, http.MethodGet, "/api/logs/"+strconv.FormatInt(id, 10), nil, nil, &entry)
	return entry, err
}

// ExportLogs streams the CSV export of the matching entries into w
func (c *Client) ExportLogs(ctx context.Context, filter domain.LogFilter, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/logs/export", filterQuery(filter)), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	rsp, err := c.send(req)
	if err != nil {
		return err
	}
	defer rsp.Body.Close()

	if _, err := io.Copy(w, rsp.Body); err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}
	return nil
}

// ClearLogs deletes every entry and returns how many were removed
func (c *Client) ClearLogs(ctx context.Context) (int64, error) {
	var rsp httpapi.ClearResponse
	if err := c.do(ctx, http.MethodDelete, "/api/logs", nil, nil, &rsp); err != nil {
		return 0, err
	}
	return rsp.Deleted, nil
}

// TestHook records a synthetic Notification entry
func (c *Client) TestHook(ctx context.Context) (domain.LogEntry, error) {
	var rsp httpapi.LogResponse
	if err := c.do(ctx, http.MethodPost, "/api/test-hook", nil, nil, &rsp); err != nil {
		return domain.LogEntry{}, err
	}
	return rsp.Log, nil
}
