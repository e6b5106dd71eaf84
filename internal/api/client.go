package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	BaseURL = "https://api.odcloud.kr/api/nts-businessman/v1"
)

type Client struct {
	restyClient *resty.Client
	serviceKey  string
}

func NewClient(serviceKey string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(BaseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{restyClient: client, serviceKey: serviceKey}
}

// SetBaseURL points the client at a different endpoint, e.g. a proxy
// or a test server.
func (c *Client) SetBaseURL(url string) {
	c.restyClient.SetBaseURL(url)
}

// Status queries the registration status of up to 100 business numbers
// in a single call. A transport failure wraps the underlying error; a
// non-200 response becomes an *APIError carrying the status code.
func (c *Client) Status(ctx context.Context, numbers []string) ([]StatusRecord, error) {
	var statusResp statusResponse
	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetQueryParam("serviceKey", c.serviceKey).
		SetBody(map[string][]string{"b_no": numbers}).
		SetResult(&statusResp).
		Post("/status")
	if err != nil {
		return nil, fmt.Errorf("네트워크 오류 발생: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode()}
	}
	if statusResp.Data == nil {
		return nil, errors.New("API로부터 유효한 데이터를 받지 못했습니다")
	}
	return statusResp.Data, nil
}
