package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"florist-backend/internal/domains/delivery/model"
)

// HolidayClient talks to the remote holiday service.
// Contract: GET {base}/api/holidays?year=Y -> {"success": bool, "data": [...]}.
type HolidayClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHolidayClient(baseURL string, timeout time.Duration) *HolidayClient {
	return &HolidayClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchYear requests the holiday list for a year. Callers treat any error the
// same as an empty response and fall back to the generated set.
func (c *HolidayClient) FetchYear(ctx context.Context, year int) ([]model.Holiday, error) {
	url := fmt.Sprintf("%s/api/holidays?year=%d", c.baseURL, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build holiday request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday service returned status %d", resp.StatusCode)
	}

	var payload model.HolidayServiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode holiday response: %w", err)
	}

	if !payload.Success {
		return nil, fmt.Errorf("holiday service reported failure")
	}

	return payload.Data, nil
}
