// Package gw2 talks to the Guild Wars 2 commerce price API.
package gw2

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.guildwars2.com/v2/commerce/prices"

// ErrUpstreamUnavailable covers network failures, timeouts, bad statuses
// and malformed payloads from the commerce API.
var ErrUpstreamUnavailable = errors.New("commerce API unavailable")

// ItemPrices holds the current unit prices for one item, in copper.
type ItemPrices struct {
	Buy  float64
	Sell float64
}

type Client struct {
	client  *resty.Client
	baseURL string
}

func NewClient() *Client {
	client := resty.New()
	client.SetTimeout(10 * time.Second)

	return &Client{
		client:  client,
		baseURL: defaultBaseURL,
	}
}

// SetBaseURL overrides the commerce API endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

type priceResponse struct {
	ID   int `json:"id"`
	Buys struct {
		UnitPrice int `json:"unit_price"`
	} `json:"buys"`
	Sells struct {
		UnitPrice int `json:"unit_price"`
	} `json:"sells"`
}

// FetchPrices requests current buy/sell unit prices for the given item ids
// in a single call. An empty result set is an error: every formula needs
// all of its inputs.
func (c *Client) FetchPrices(ctx context.Context, itemIDs []int) (map[int]ItemPrices, error) {
	ids := make([]string, len(itemIDs))
	for i, id := range itemIDs {
		ids[i] = strconv.Itoa(id)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("ids", strings.Join(ids, ",")).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode())
	}

	var items []priceResponse
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items found", ErrUpstreamUnavailable)
	}

	prices := make(map[int]ItemPrices, len(items))
	for _, item := range items {
		prices[item.ID] = ItemPrices{
			Buy:  float64(item.Buys.UnitPrice),
			Sell: float64(item.Sells.UnitPrice),
		}
	}
	return prices, nil
}
