package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/okarlsson/ffwrapped/internal/config"
)

const baseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"

type Client struct {
	httpClient *http.Client
	Config     config.ESPNAPI
}

func NewClient(cfg config.ESPNAPI) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		Config:     cfg,
	}
}

// Get issues an authenticated request against the ESPN v3 API and
// decodes the JSON response into result. params values are added as
// query parameters; a repeated key is passed as multiple values.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string][]string, headers map[string]string, result interface{}) error {
	url := fmt.Sprintf("%s%s", baseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	q := req.URL.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	req.URL.RawQuery = q.Encode()

	c.setCookies(req)

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	return nil
}

func (c *Client) setCookies(req *http.Request) {
	cookie := fmt.Sprintf("SWID=%s; espn_s2=%s", c.Config.SWID, c.Config.ESPNS2)
	req.Header.Set("Cookie", cookie)
}
