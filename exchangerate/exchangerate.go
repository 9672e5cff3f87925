// Package exchangerate reads currency symbols and latest rates from exchangerate.host.
package exchangerate

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/etnz/cambio"
	"github.com/etnz/cambio/date"
	"github.com/etnz/cambio/fetch"
	"github.com/tidwall/gjson"
)

// BaseURL is the public API root.
const BaseURL = "https://api.exchangerate.host"

// DefaultLimit is the number of quotations Latest returns when no limit is given.
const DefaultLimit = 10

// Client reads the exchangerate.host API.
type Client struct {
	fetch   *fetch.Client
	baseURL string
}

// New returns a Client. An empty baseURL means BaseURL.
func New(c *fetch.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{fetch: c, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Symbols returns the display symbol of each currency, by code. Currencies published
// without a symbol are left out.
func (c *Client) Symbols(ctx context.Context) (map[string]string, error) {
	// {"success":true,"symbols":{"BRL":{"description":"Brazilian Real","code":"BRL","symbol":"R$"}, ...}}
	body, err := c.fetch.Get(ctx, c.baseURL+"/symbols")
	if err != nil {
		return nil, fmt.Errorf("cannot list symbols: %w", err)
	}
	doc, err := parse(body)
	if err != nil {
		return nil, err
	}
	symbols := make(map[string]string)
	doc.Get("symbols").ForEach(func(code, v gjson.Result) bool {
		if s := v.Get("symbol").String(); s != "" {
			symbols[code.String()] = s
		}
		return true
	})
	return symbols, nil
}

// Latest returns the latest rates of base, one Quotation per quoted currency, in the
// order the service lists them. base itself is skipped, and at most limit quotations are
// returned (DefaultLimit when limit <= 0). Previous values are not published.
func (c *Client) Latest(ctx context.Context, base string, limit int) ([]cambio.Quotation, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	base = strings.ToUpper(base)
	// {"base":"USD","date":"2025-05-02","rates":{"AED":3.6725,"BRL":5.6213, ...}}
	body, err := c.fetch.Get(ctx, c.baseURL+"/latest?base="+url.QueryEscape(base))
	if err != nil {
		return nil, fmt.Errorf("cannot get latest %s rates: %w", base, err)
	}
	doc, err := parse(body)
	if err != nil {
		return nil, err
	}
	day, err := date.Parse(doc.Get("date").String())
	if err != nil {
		return nil, fmt.Errorf("invalid latest %s rates: %w", base, err)
	}

	var quotations []cambio.Quotation
	doc.Get("rates").ForEach(func(code, rate gjson.Result) bool {
		if code.String() == base {
			return true
		}
		quotations = append(quotations, cambio.Quotation{
			Currency:    code.String(),
			LatestDate:  day,
			LatestValue: rate.Float(),
		})
		return len(quotations) < limit
	})
	return quotations, nil
}

func parse(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, errors.New("invalid JSON payload")
	}
	doc := gjson.ParseBytes(body)
	if ok := doc.Get("success"); ok.Exists() && !ok.Bool() {
		return gjson.Result{}, fmt.Errorf("request refused: %s", doc.Get("error.info").String())
	}
	return doc, nil
}
