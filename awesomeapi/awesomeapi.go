// Package awesomeapi reads exchange rates from economia.awesomeapi.com.br.
package awesomeapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/log"
	"github.com/etnz/cambio"
	"github.com/etnz/cambio/date"
	"github.com/etnz/cambio/fetch"
	"github.com/shopspring/decimal"
)

// BaseURL is the public API root.
const BaseURL = "https://economia.awesomeapi.com.br"

// Client reads rates from the awesomeapi service.
type Client struct {
	fetch   *fetch.Client
	baseURL string
}

var _ cambio.Rates = (*Client)(nil)

// New returns a Client. An empty baseURL means BaseURL.
func New(c *fetch.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{fetch: c, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Available returns the name of every currency the service can quote, by code.
func (c *Client) Available(ctx context.Context) (map[string]string, error) {
	// {"AED":"Dirham dos Emirados","AFN":"Afghani do Afeganistão", ...}
	var names map[string]string
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/json/available/uniq", &names); err != nil {
		return nil, fmt.Errorf("cannot list available currencies: %w", err)
	}
	return names, nil
}

/*
Last returns the latest bid for from in to.

	{
	    "USDBRL": {
	        "code": "USD",
	        "codein": "BRL",
	        "name": "Dólar Americano/Real Brasileiro",
	        "high": "5.6437",
	        "low": "5.5901",
	        "bid": "5.6213",
	        "ask": "5.6243",
	        "timestamp": "1746187199",
	        "create_date": "2025-05-02 08:59:59"
	    }
	}
*/
func (c *Client) Last(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	var jobj any
	if err := c.fetch.GetJSON(ctx, fmt.Sprintf("%s/last/%s-%s", c.baseURL, from, to), &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error retrieving %s-%s: %w", from, to, err)
	}
	path := fmt.Sprintf("$.%s%s.bid", from, to)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %s-%s: %q %w", from, to, path, err)
	}
	// jsonpath may return a list of one answer
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return parseBid(jval)
}

// quote is one day of the daily endpoint, only the first one carries the pair details.
type quote struct {
	Bid       string `json:"bid"`
	Timestamp string `json:"timestamp"`
}

// Daily returns the daily bids of the last days, in chronological order.
func (c *Client) Daily(ctx context.Context, from, to string, days int) (*date.History[float64], error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if days <= 0 {
		return nil, fmt.Errorf("invalid number of days %d", days)
	}
	// newest first:
	// [{"code":"USD","codein":"BRL","bid":"5.6213","timestamp":"1746187199",...},{"bid":"5.6710","timestamp":"1746100799",...}]
	var quotes []quote
	addr := fmt.Sprintf("%s/json/daily/%s-%s/%d", c.baseURL, from, to, days)
	if err := c.fetch.GetJSON(ctx, addr, &quotes); err != nil {
		return nil, fmt.Errorf("error retrieving %s-%s history: %w", from, to, err)
	}

	h := new(date.History[float64])
	// walk oldest first, so that the freshest quote of a day wins.
	for i := len(quotes) - 1; i >= 0; i-- {
		q := quotes[i]
		sec, err := strconv.ParseInt(q.Timestamp, 10, 64)
		if err != nil {
			log.Warn("skipping quote with invalid timestamp", "pair", from+"-"+to, "timestamp", q.Timestamp)
			continue
		}
		bid, err := strconv.ParseFloat(q.Bid, 64)
		if err != nil {
			log.Warn("skipping quote with invalid bid", "pair", from+"-"+to, "bid", q.Bid)
			continue
		}
		h.Append(date.FromUnix(sec), bid)
	}
	return h, nil
}

// Quotation returns the latest and previous daily bids of from in to.
func (c *Client) Quotation(ctx context.Context, from, to string) (cambio.Quotation, error) {
	h, err := c.Daily(ctx, from, to, 2)
	if err != nil {
		return cambio.Quotation{}, err
	}
	if h.Len() == 0 {
		return cambio.Quotation{}, fmt.Errorf("no quote for %s-%s", from, to)
	}
	q := cambio.Quotation{Currency: strings.ToUpper(from + "-" + to)}
	q.LatestDate, q.LatestValue = h.Latest()
	if day, v, ok := h.Previous(); ok {
		q.PreviousDate, q.PreviousValue = day, v
	}
	return q, nil
}

// parseBid reads a bid that the API sends as a string, sometimes as a number.
func parseBid(jval any) (decimal.Decimal, error) {
	var (
		bid decimal.Decimal
		err error
	)
	switch v := jval.(type) {
	case string:
		bid, err = decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid bid %q: %w", v, err)
		}
	case float64:
		bid = decimal.NewFromFloat(v)
	default:
		return decimal.Zero, fmt.Errorf("invalid bid %v: neither a string nor a number", jval)
	}
	if !bid.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid bid %v: not positive", bid)
	}
	return bid, nil
}
