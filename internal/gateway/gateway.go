package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/DPogorelov/enrollment/internal/config"
	"github.com/DPogorelov/enrollment/pkg/clients"
	"github.com/google/uuid"
)

// Invoice statuses as reported by the payment processor.
const (
	StatusDraft         string = "DRAFT"
	StatusFinalized     string = "FINALIZED"
	StatusPaid          string = "PAID"
	StatusVoid          string = "VOID"
	StatusUncollectible string = "UNCOLLECTIBLE"
)

// Metadata keys the processor attaches to invoices created for this course.
const (
	MetaType          string = "type"
	MetaCourseID      string = "course_id"
	MetaScheduledDate string = "scheduled_date"
)

const (
	KindDeposit string = "deposit"
	KindBalance string = "balance"
)

const pageLimit = 100

type Invoice struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	Status     string            `json:"status"`
	Metadata   map[string]string `json:"metadata"`
}

type listResponse struct {
	Items         []Invoice `json:"items"`
	NextPageToken string    `json:"next_page_token"`
}

type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.GatewayAddress,
		client: client,
	}
}

// ListDraftInvoices fetches one page of draft invoices. An empty returned
// token means the listing is exhausted.
func (c *Client) ListDraftInvoices(ctx context.Context, pageToken string) ([]Invoice, string, error) {
	params := url.Values{}
	params.Set("status", StatusDraft)
	params.Set("limit", fmt.Sprintf("%d", pageLimit))
	if pageToken != "" {
		params.Set("page_token", pageToken)
	}

	statusCode, respBody, _, err := c.client.Get(c.url+"/api/invoices?"+params.Encode(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("can't reach payment gateway: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, "", fmt.Errorf("gateway returned status %d listing invoices", statusCode)
	}

	var resp listResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, "", fmt.Errorf("can't parse gateway response: %w", err)
	}
	return resp.Items, resp.NextPageToken, nil
}

// Finalize moves a draft invoice to finalized. The processor rejects a
// second finalize of the same invoice.
func (c *Client) Finalize(ctx context.Context, invoiceID string) error {
	return c.post(ctx, "/api/invoices/"+invoiceID+"/finalize")
}

// Pay charges the customer's saved payment method for a finalized invoice.
func (c *Client) Pay(ctx context.Context, invoiceID string) error {
	return c.post(ctx, "/api/invoices/"+invoiceID+"/pay")
}

func (c *Client) post(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+path, http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("can't reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, body)
	}
	return nil
}
