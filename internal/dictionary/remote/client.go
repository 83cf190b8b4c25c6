// Package remote downloads dictionary files over HTTP.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/TURKZEN/english-turkish-dictionary/internal/dictionary"
)

const maxErrorBodyLength = 512

// Client implements dictionary.Fetcher.
type Client struct {
	httpClient *resty.Client
}

var _ dictionary.Fetcher = (*Client)(nil)

func NewClient(userAgent string) *Client {
	client := resty.New()
	client.SetHeader("Accept", "application/json")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &Client{
		httpClient: client,
	}
}

// Fetch issues a GET request for url and returns the response body unread.
func (client *Client) Fetch(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	res, err := client.httpClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, 0, &dictionary.FetchError{URL: url, Err: fmt.Errorf("client.R.Get > %w", err)}
	}

	body := res.RawBody()
	if res.StatusCode() < http.StatusOK || res.StatusCode() >= http.StatusMultipleChoices {
		defer func() {
			_ = body.Close()
		}()
		snippet, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyLength))
		return nil, 0, &dictionary.FetchError{
			URL:        url,
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("unexpected response: %s", strings.Join(strings.Fields(string(snippet)), " ")),
		}
	}

	size := int64(-1)
	if res.RawResponse != nil {
		size = res.RawResponse.ContentLength
	}
	return body, size, nil
}
