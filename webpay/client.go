// Package webpay is a thin client for the Transbank Webpay Plus REST API.
// The bridge holds no state: create, commit and status are pure pass-through
// calls with error normalization.
package webpay

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/viplat/gamehub-api/config"
)

const transactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

// Client is what the payment controller depends on; tests substitute a fake.
type Client interface {
	Create(ctx context.Context, buyOrder, sessionID string, amount int, returnURL string) (*CreateResponse, error)
	Commit(ctx context.Context, token string) (*TransactionResponse, error)
	Status(ctx context.Context, token string) (*TransactionResponse, error)
}

type restClient struct {
	http *resty.Client
}

func NewClient(cfg config.WebpayConfig) Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Tbk-Api-Key-Id", cfg.CommerceCode).
		SetHeader("Tbk-Api-Key-Secret", cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &restClient{http: client}
}

func (c *restClient) Create(ctx context.Context, buyOrder, sessionID string, amount int, returnURL string) (*CreateResponse, error) {
	var created CreateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createRequest{
			BuyOrder:  buyOrder,
			SessionID: sessionID,
			Amount:    amount,
			ReturnURL: returnURL,
		}).
		SetResult(&created).
		Post(transactionsPath)
	if err != nil {
		return nil, fmt.Errorf("webpay create request failed: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("create", resp)
	}
	return &created, nil
}

func (c *restClient) Commit(ctx context.Context, token string) (*TransactionResponse, error) {
	var committed TransactionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&committed).
		Put(transactionsPath + "/" + token)
	if err != nil {
		return nil, fmt.Errorf("webpay commit request failed: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("commit", resp)
	}
	return &committed, nil
}

func (c *restClient) Status(ctx context.Context, token string) (*TransactionResponse, error) {
	var status TransactionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&status).
		Get(transactionsPath + "/" + token)
	if err != nil {
		return nil, fmt.Errorf("webpay status request failed: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("status", resp)
	}
	return &status, nil
}

func apiError(op string, resp *resty.Response) error {
	return fmt.Errorf("webpay %s failed with status %d: %s", op, resp.StatusCode(), resp.String())
}
