package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/extract"
)

// ExtractFields implements extract.DocumentExtractor using chat/completions
// with the stored document attached by URL. The response either validates
// against the invoice schema or the whole extraction fails; there is no
// partial success.
func (c *Client) ExtractFields(ctx context.Context, req extract.ExtractRequest) (extract.InvoiceFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"document_url", req.DocumentURL,
		"filename_hint", req.FilenameHint,
	)

	schema := extract.BuildInvoiceJSONSchema()
	sys := extract.BuildSystemPrompt(req)
	user := extract.BuildUserPrompt(req)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": user},
				{"type": "image_url", "image_url": map[string]any{"url": req.DocumentURL}},
			}},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.InvoiceFields{}, nil, classify(httpErr)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.InvoiceFields{}, raw, fmt.Errorf("decode oracle response: %w", common.ErrExtraction)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("extract.no_choices", "req_id", rid, "elapsed_ms", time.Since(start).Milliseconds())
		return extract.InvoiceFields{}, raw, fmt.Errorf("no choices in oracle response: %w", common.ErrExtraction)
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	// Validate strictly first.
	if err := extract.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		if c.cfg.StrictSchema {
			c.log.Error("extract.schema_validation_failed",
				"req_id", rid, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return extract.InvoiceFields{}, rawContent, fmt.Errorf("schema validation failed: %w", common.ErrExtraction)
		}
		// Lenient path: drop/normalize optional offenders and re-validate.
		cleaned, droppedKeys, sErr := extract.SanitizeOptionalFields(rawContent)
		if sErr != nil {
			c.log.Error("extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return extract.InvoiceFields{}, rawContent, fmt.Errorf("sanitize failed: %w", common.ErrExtraction)
		}
		if vErr := extract.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(rawContent),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return extract.InvoiceFields{}, rawContent, fmt.Errorf("schema validation failed: %w", common.ErrExtraction)
		}
		c.log.Warn("extract.lenient_sanitize_applied",
			"req_id", rid, "dropped", droppedKeys,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	var out extract.InvoiceFields
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.log.Error("extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.InvoiceFields{}, rawContent, fmt.Errorf("unmarshal fields: %w", common.ErrExtraction)
	}

	c.log.Info("extract.ok",
		"req_id", rid,
		"vendor", out.VendorName,
		"invoice_number", out.InvoiceNumber,
		"total", out.TotalAmount,
		"currency", out.Currency,
		"items", len(out.Items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oracle http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("oracle response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("oracle status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

// classify converts transport failures into the error taxonomy: deadline
// overruns become ErrTimeout (retryable at the user's discretion), everything
// else ErrExtraction.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || isClientTimeout(err) {
		return fmt.Errorf("%v: %w", err, common.ErrTimeout)
	}
	return fmt.Errorf("%v: %w", err, common.ErrExtraction)
}

func isClientTimeout(err error) bool {
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
