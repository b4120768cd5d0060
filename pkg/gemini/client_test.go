package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func candidateReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return string(b)
}

func TestExtractBillRequiresAPIKey(t *testing.T) {
	c := NewClient("")
	_, err := c.ExtractBill(context.Background(), []byte("img"), "image/png")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestExtractBillParsesFencedJSON(t *testing.T) {
	reply := "```json\n{\"dealerName\": \"Ramesh Textiles\", \"items\": [{\"itemName\": \"Formal Blue Shirt\", \"quantity\": 10, \"size\": \"M\", \"costPrice\": 450}], \"totalAmount\": 4500}\n```"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Write([]byte(candidateReply(reply)))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	bill, err := c.ExtractBill(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if bill.DealerName != "Ramesh Textiles" {
		t.Fatalf("dealer name = %q", bill.DealerName)
	}
	if len(bill.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(bill.Items))
	}
	it := bill.Items[0]
	if it.ItemName != "Formal Blue Shirt" || it.Quantity != 10 || it.Size != "M" || it.CostPrice != 450 {
		t.Fatalf("unexpected item: %+v", it)
	}
	if bill.TotalAmount != 4500 {
		t.Fatalf("total = %v", bill.TotalAmount)
	}
}

func TestExtractBillToleratesNullsAndProse(t *testing.T) {
	reply := "Here is the data you asked for:\n{\"dealerName\": null, \"items\": [{\"itemName\": \" Pants \", \"quantity\": 0, \"size\": null, \"costPrice\": 0}], \"totalAmount\": null}\nLet me know if you need anything else."
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateReply(reply)))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	bill, err := c.ExtractBill(context.Background(), []byte("img"), "")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if bill.DealerName != "" {
		t.Fatalf("dealer name = %q", bill.DealerName)
	}
	if bill.Items[0].ItemName != "Pants" {
		t.Fatalf("item name = %q", bill.Items[0].ItemName)
	}
	if bill.TotalAmount != 0 {
		t.Fatalf("total = %v", bill.TotalAmount)
	}
}

func TestExtractBillParsesCurrencyStrings(t *testing.T) {
	reply := `{"dealerName": "Ramesh Textiles", "items": [{"itemName": "Silk Saree", "quantity": "2 pcs", "size": null, "costPrice": " Rs. 1,299.50 "}], "totalAmount": "₹2599"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateReply(reply)))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	bill, err := c.ExtractBill(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	it := bill.Items[0]
	if it.Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", it.Quantity)
	}
	if it.CostPrice != 1299.50 {
		t.Fatalf("cost = %v, want 1299.50", it.CostPrice)
	}
	if bill.TotalAmount != 2599 {
		t.Fatalf("total = %v, want 2599", bill.TotalAmount)
	}
}

func TestExtractBillClassifiesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.ExtractBill(context.Background(), []byte("img"), "image/png")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d", apiErr.StatusCode)
	}
}

func TestExtractBillClassifiesMalformedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateReply("sorry, I could not read the image")))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.ExtractBill(context.Background(), []byte("img"), "image/png")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}
