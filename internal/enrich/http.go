package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/blockpulse/blockpulse-backend/internal/fault"
)

const defaultSourceRPS = 5

func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &fault.ParseError{Field: "body", Err: err}
	}
	return nil
}

// valueOr dereferences an optional payload field, falling back to def when
// the upstream omitted it.
func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// fieldOr decodes one raw payload field, falling back to def when the
// upstream omitted the field, sent null, or sent an incompatible type.
func fieldOr[T any](raw json.RawMessage, def T) T {
	if len(raw) == 0 || string(raw) == "null" {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}
