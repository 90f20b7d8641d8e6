package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTranslateURL = "https://translate.googleapis.com/translate_a/single"

// GoogleClient calls the public Google Translate gtx endpoint. No API key
// is required; the endpoint is rate-limited upstream, which is acceptable
// because it is only the fallback behind the manual phrase tables.
type GoogleClient struct {
	http    *resty.Client
	baseURL string
}

// NewGoogleClient creates a translation client. baseURL overrides the
// endpoint (used by tests); pass "" for the default.
func NewGoogleClient(baseURL string) *GoogleClient {
	if baseURL == "" {
		baseURL = defaultTranslateURL
	}
	return &GoogleClient{
		http:    resty.New().SetTimeout(10 * time.Second),
		baseURL: baseURL,
	}
}

// Translate translates text from sourceLang to targetLang.
func (c *GoogleClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     sourceLang,
			"tl":     targetLang,
			"dt":     "t",
			"q":      text,
		}).
		Get(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("translate endpoint returned %d", resp.StatusCode())
	}
	return decodeResponse(resp.Body())
}

// decodeResponse unpacks the gtx response shape:
// [[["translated","source",...],["more","text",...]],...]. The first element
// is a list of segment pairs; segments are concatenated.
func decodeResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode translation response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("decode translation segments: %w", err)
	}

	var out strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		out.WriteString(part)
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("translation response carried no text")
	}
	return out.String(), nil
}
