package purchase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// APIClient is a Finalizer backed by the marketplace HTTP API. It sends
// the single finalize request with the caller's bearer token.
type APIClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewAPIClient(baseURL, token string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *APIClient) CreateProduct(ctx context.Context, in FinalizeInput) (string, error) {
	payload := map[string]any{
		"material_id":      in.MaterialID,
		"name":             in.Name,
		"description":      in.Description,
		"image":            in.Image,
		"price":            in.Price,
		"quantity":         in.Quantity,
		"external_tx_hash": in.ExternalTxHash,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/manufacturer/products", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("finalize failed: status %d", res.StatusCode)
	}

	var parsed struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", err
	}
	return parsed.Data.ID, nil
}

var _ Finalizer = (*APIClient)(nil)
