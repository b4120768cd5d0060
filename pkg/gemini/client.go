// Package gemini calls the Gemini vision API to read dealer purchase-bill
// images into structured data. The model's output is best-effort and must be
// treated as untrusted free text by callers.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/pkg/sanitize"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro-vision:generateContent"

const extractionPrompt = `You are reading a dealer purchase bill image.

Extract the following information in JSON format only (no markdown, no code blocks, just pure JSON):

{
  "dealerName": "string or null",
  "items": [
    {
      "itemName": "string",
      "quantity": number,
      "size": "string or null",
      "costPrice": number
    }
  ],
  "totalAmount": number or null
}

Rules:
- Sort items clearly and normalize names
- Handle handwritten bills and partial unreadable data gracefully
- If any field cannot be read, use null or 0
- Extract only valid numeric values for prices and quantities
- Return valid JSON only, no explanations or additional text`

// ErrMissingAPIKey signals that no credential was configured. The caller
// should direct the user to manual entry rather than fail the workflow.
var ErrMissingAPIKey = errors.New("gemini: API key is not configured")

// ErrMalformedResponse signals that the model replied with something that
// could not be parsed into bill data.
var ErrMalformedResponse = errors.New("gemini: malformed response")

// APIError is a non-2xx reply from the Gemini endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API returned status %d: %s", e.StatusCode, e.Body)
}

// ExtractedBill is the structured result of reading a bill image.
type ExtractedBill struct {
	DealerName  string          `json:"dealer_name,omitempty"`
	Items       []ExtractedItem `json:"items"`
	TotalAmount float64         `json:"total_amount,omitempty"`
}

// ExtractedItem is a single line read from the bill image.
type ExtractedItem struct {
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	CostPrice float64 `json:"cost_price"`
}

// Client talks to the Gemini generateContent endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Gemini client. An empty API key is allowed at
// construction; calls will fail with ErrMissingAPIKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ExtractBill sends the bill image to the model and parses its reply.
func (c *Client) ExtractBill(ctx context.Context, image []byte, mimeType string) (*ExtractedBill, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{Text: extractionPrompt},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"?key="+c.apiKey, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty candidate list", ErrMalformedResponse)
	}

	return parseBillText(gr.Candidates[0].Content.Parts[0].Text)
}

// parseBillText extracts the JSON object from the model's text reply,
// tolerating markdown code fences and surrounding prose.
func parseBillText(text string) (*ExtractedBill, error) {
	jsonText := strings.TrimSpace(text)
	jsonText = strings.ReplaceAll(jsonText, "```json", "")
	jsonText = strings.ReplaceAll(jsonText, "```", "")

	start := strings.Index(jsonText, "{")
	end := strings.LastIndex(jsonText, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrMalformedResponse)
	}
	jsonText = jsonText[start : end+1]

	var raw struct {
		DealerName *string `json:"dealerName"`
		Items      []struct {
			ItemName  string          `json:"itemName"`
			Quantity  json.RawMessage `json:"quantity"`
			Size      *string         `json:"size"`
			CostPrice json.RawMessage `json:"costPrice"`
		} `json:"items"`
		TotalAmount json.RawMessage `json:"totalAmount"`
	}

	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	out := &ExtractedBill{Items: make([]ExtractedItem, 0, len(raw.Items))}
	if raw.DealerName != nil {
		out.DealerName = strings.TrimSpace(*raw.DealerName)
	}
	out.TotalAmount = numberOrZero(raw.TotalAmount)

	for _, it := range raw.Items {
		item := ExtractedItem{
			ItemName:  strings.TrimSpace(it.ItemName),
			Quantity:  int(numberOrZero(it.Quantity)),
			CostPrice: numberOrZero(it.CostPrice),
		}
		if it.Size != nil {
			item.Size = strings.TrimSpace(*it.Size)
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// numberOrZero reads a numeric figure the model may emit as a bare number,
// null, or a quoted string like "Rs. 1,299.50". Unparseable or negative
// figures collapse to zero.
func numberOrZero(raw json.RawMessage) float64 {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		return sanitize.Number(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
