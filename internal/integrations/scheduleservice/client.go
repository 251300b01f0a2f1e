package scheduleservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the schedule service that owns barber availability
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a schedule service client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAvailableBarbers returns the barbers free for the whole slot, with their
// monthly workload and availability score. An unknown service yields an empty roster.
func (c *Client) GetAvailableBarbers(ctx context.Context, serviceID string, start time.Time, durationMinutes int) ([]Barber, error) {
	query := url.Values{}
	query.Set("serviceId", serviceID)
	query.Set("start", start.UTC().Format(time.RFC3339))
	query.Set("duration", strconv.Itoa(durationMinutes))

	endpoint := fmt.Sprintf("%s/internal/barbers/available?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.log.Warn("ScheduleService: no roster for service=%s", serviceID)
		return []Barber{}, nil
	case http.StatusBadRequest:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: bad request: %s", ErrInvalidResponse, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload AvailableBarbersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	for _, b := range payload.Barbers {
		if b.ID == "" || b.MonthlyBookingCount < 0 || b.AvailabilityScore < 0 || b.AvailabilityScore > 1 {
			return nil, fmt.Errorf("%w: barber %q has invalid metadata", ErrInvalidResponse, b.ID)
		}
	}

	c.log.Info("ScheduleService: %d barbers available for service=%s at %s",
		len(payload.Barbers), serviceID, start.Format(time.RFC3339))
	return payload.Barbers, nil
}
