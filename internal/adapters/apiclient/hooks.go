package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/renato0307/hotline/internal/adapters/httpapi"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/hookconfig"
	"github.com/renato0307/hotline/internal/ports"
)

var _ ports.HookConfigSource = (*Client)(nil)

// HookConfig fetches the canonical UI hook configuration
func (c *Client) HookConfig(ctx context.Context) (domain.HookConfig, error) {
	var cfg domain.HookConfig
	err := c.do(ctx, http.MethodGet, "/api/hook-ui-config", nil, nil, &cfg)
	return cfg, err
}

// SaveHookConfig replaces the whole UI hook configuration
func (c *Client) SaveHookConfig(ctx context.Context, cfg domain.HookConfig) (domain.HookConfig, error) {
	var saved domain.HookConfig
	err := c.do(ctx, http.MethodPost, "/api/hook-ui-config", nil, cfg, &saved)
	return saved, err
}

// AddEntry appends a disabled entry to hookType
func (c *Client) AddEntry(ctx context.Context, hookType domain.HookType) ([]domain.HookEntry, error) {
	var rsp httpapi.EntriesResponse
	err := c.do(ctx, http.MethodPost, entriesPath(hookType), nil, nil, &rsp)
	return rsp.Entries, err
}

// RemoveEntry deletes the entry at index
func (c *Client) RemoveEntry(ctx context.Context, hookType domain.HookType, index int) ([]domain.HookEntry, error) {
	var rsp httpapi.EntriesResponse
	err := c.do(ctx, http.MethodDelete, entryPath(hookType, index), nil, nil, &rsp)
	return rsp.Entries, err
}

// UpdateField sets one field of the entry at index
func (c *Client) UpdateField(
	ctx context.Context,
	hookType domain.HookType,
	index int,
	field hookconfig.Field,
	value any,
) ([]domain.HookEntry, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidField, field, err)
	}

	var rsp httpapi.EntriesResponse
	req := httpapi.FieldUpdate{Field: string(field), Value: raw}
	err = c.do(ctx, http.MethodPatch, entryPath(hookType, index), nil, req, &rsp)
	return rsp.Entries, err
}

// ApplyHooks compiles the UI configuration into the agent's settings.json
func (c *Client) ApplyHooks(ctx context.Context, target domain.ConfigTarget) (httpapi.HooksResponse, error) {
	var rsp httpapi.HooksResponse
	err := c.do(ctx, http.MethodPost, "/api/hooks/apply", nil, httpapi.ApplyRequest{Target: string(target)}, &rsp)
	return rsp, err
}

// ConsumerHooks reads the "hooks" key of the agent's settings.json
func (c *Client) ConsumerHooks(ctx context.Context, target domain.ConfigTarget) (httpapi.HooksResponse, error) {
	q := url.Values{}
	if target != "" {
		q.Set("target", string(target))
	}
	var rsp httpapi.HooksResponse
	err := c.do(ctx, http.MethodGet, "/api/hooks", q, nil, &rsp)
	return rsp, err
}

func entriesPath(hookType domain.HookType) string {
	return "/api/hook-ui-config/" + url.PathEscape(string(hookType)) + "/entries"
}

func entryPath(hookType domain.HookType, index int) string {
	return fmt.Sprintf("%s/%d", entriesPath(hookType), index)
}
