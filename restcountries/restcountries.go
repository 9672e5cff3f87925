// Package restcountries reads the country directory published by restcountries.com.
package restcountries

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/etnz/cambio"
	"github.com/etnz/cambio/fetch"
	"github.com/tidwall/gjson"
)

// BaseURL is the restcountries v3.1 API.
const BaseURL = "https://restcountries.com/v3.1"

// fields restricts the payload to what a Record needs.
const fields = "name,translations,cca2,currencies"

// Client is a cambio.Source over the restcountries API.
type Client struct {
	fetch   *fetch.Client
	baseURL string
}

var _ cambio.Source = (*Client)(nil)

// New returns a Client. An empty baseURL means BaseURL.
func New(c *fetch.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{fetch: c, baseURL: baseURL}
}

// Records fetches every country.
func (c *Client) Records(ctx context.Context) ([]cambio.Record, error) {
	// https://restcountries.com/v3.1/all?fields=name,translations,cca2,currencies
	// [
	//   {
	//     "name": {"common": "Brazil", "official": "Federative Republic of Brazil", ...},
	//     "cca2": "BR",
	//     "currencies": {"BRL": {"name": "Brazilian real", "symbol": "R$"}},
	//     "translations": {"por": {"official": "República Federativa do Brasil", "common": "Brasil"}, ...}
	//   },
	addr := fmt.Sprintf("%s/all?fields=%s", c.baseURL, fields)
	body, err := c.fetch.Get(ctx, addr)
	if err != nil {
		return nil, err
	}
	return Decode(body)
}

// Decode parses a restcountries payload. Currencies are kept in document order,
// which a map based decoding would lose.
func Decode(body []byte) ([]cambio.Record, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid JSON payload")
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsArray() {
		return nil, fmt.Errorf("want a JSON array of countries, got %s", doc.Type)
	}

	var records []cambio.Record
	doc.ForEach(func(_, country gjson.Result) bool {
		if !country.IsObject() {
			log.Debug("skipping malformed country", "raw", country.Raw)
			return true
		}
		r := cambio.Record{
			Common:       country.Get("name.common").String(),
			Code:         country.Get("cca2").String(),
			Translations: make(map[string]string),
		}
		country.Get("translations").ForEach(func(lang, tr gjson.Result) bool {
			if common := tr.Get("common").String(); common != "" {
				r.Translations[lang.String()] = common
			}
			return true
		})
		country.Get("currencies").ForEach(func(code, cur gjson.Result) bool {
			r.Currencies = append(r.Currencies, cambio.Currency{
				Code:   code.String(),
				Name:   cur.Get("name").String(),
				Symbol: cur.Get("symbol").String(),
			})
			return true
		})
		records = append(records, r)
		return true
	})
	return records, nil
}
