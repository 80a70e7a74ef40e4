package odoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/odoo-reporter/pkg/models/store"
	"github.com/rs/zerolog"
)

const callTimeout = 30 * time.Second

// Config holds the credentials for one Odoo database.
type Config struct {
	URL      string
	Database string
	UserID   int
	Password string
}

// Client performs execute_kw calls against an Odoo JSON-RPC endpoint.
//
// The backend is unreliable about optional modules and fields, so the rest
// of the system treats "no data" and "call failed" identically: every
// transport error, non-2xx status, malformed payload, or backend-reported
// error is logged and degrades to an empty result set. Errors never
// propagate past this boundary.
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger
}

func NewClient(logger zerolog.Logger, cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: callTimeout},
		logger: logger,
	}
}

// QueryOptions are the kwargs understood by search_read.
type QueryOptions struct {
	Fields []string
	Order  string
	Limit  int
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
}

type rpcParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    []any  `json:"args"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// SearchRead runs search_read on model with the given domain filter.
func (c *Client) SearchRead(ctx context.Context, model string, filter []any, opts QueryOptions) ([]store.Record, error) {
	if filter == nil {
		filter = []any{}
	}

	kwargs := map[string]any{"fields": opts.Fields}
	if opts.Order != "" {
		kwargs["order"] = opts.Order
	}
	if opts.Limit > 0 {
		kwargs["limit"] = opts.Limit
	}

	return c.ExecuteKW(ctx, model, "search_read", []any{filter}, kwargs), nil
}

// Read fetches the given record ids from model.
func (c *Client) Read(ctx context.Context, model string, ids []int64, fields []string) ([]store.Record, error) {
	return c.ExecuteKW(ctx, model, "read", []any{ids}, map[string]any{"fields": fields}), nil
}

// ExecuteKW sends one execute_kw envelope and decodes the result as a record
// list. Any failure yields an empty result.
func (c *Client) ExecuteKW(ctx context.Context, model, method string, args []any, kwargs map[string]any) []store.Record {
	if kwargs == nil {
		kwargs = map[string]any{}
	}

	payload := rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params: rpcParams{
			Service: "object",
			Method:  "execute_kw",
			Args:    []any{c.cfg.Database, c.cfg.UserID, c.cfg.Password, model, method, args, kwargs},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error().Err(err).Str("model", model).Str("method", method).Msg("request failed")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		c.logger.Error().Err(err).Str("model", model).Str("method", method).Msg("request failed")
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("model", model).Str("method", method).Msg("request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("model", model).
			Str("method", method).
			Msg("request failed")
		return nil
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		c.logger.Error().Err(err).Str("model", model).Str("method", method).Msg("malformed response")
		return nil
	}

	if len(rpcResp.Error) > 0 {
		c.logger.Error().
			RawJSON("details", rpcResp.Error).
			Str("model", model).
			Str("method", method).
			Msg("odoo api error")
	}

	if len(rpcResp.Result) == 0 {
		return nil
	}

	var records []store.Record
	if err := json.Unmarshal(rpcResp.Result, &records); err != nil {
		c.logger.Error().
			Err(fmt.Errorf("unexpected result shape: %w", err)).
			Str("model", model).
			Str("method", method).
			Msg("malformed response")
		return nil
	}
	return records
}
