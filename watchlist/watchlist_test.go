package watchlist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/etnz/cambio"
	"github.com/etnz/cambio/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	usd = cambio.Currency{Code: "USD", Name: "United States dollar", Symbol: "$"}
	eur = cambio.Currency{Code: "EUR", Name: "Euro", Symbol: "€"}
	brl = cambio.Currency{Code: "BRL", Name: "Brazilian real", Symbol: "R$"}
)

// rates maps "FROMTO" to a rate.
type rates map[string]string

func (r rates) Last(ctx context.Context, from, to string) (decimal.Decimal, error) {
	v, ok := r[from+to]
	if !ok {
		return decimal.Zero, errors.New("no rate")
	}
	return decimal.RequireFromString(v), nil
}

func (r rates) Daily(ctx context.Context, from, to string, days int) (*date.History[float64], error) {
	return new(date.History[float64]), nil
}

func sample() *List {
	l := new(List)
	l.Add(cambio.Entity{Name: "Estados Unidos", Code: "US", Currency: usd})
	l.Add(cambio.Entity{Name: "Alemanha", Code: "DE", Currency: eur})
	l.Add(cambio.Entity{Name: "Brasil", Code: "BR", Currency: brl})
	return l
}

func TestAdd(t *testing.T) {
	l := sample()
	require.Len(t, l.Items, 3)
	assert.Equal(t, "US", l.Items[0].CountryCode)
	assert.True(t, l.Items[0].Amount.IsZero())

	// Ecuador uses the dollar too.
	i, added := l.Add(cambio.Entity{Name: "Equador", Code: "EC", Currency: usd})
	assert.False(t, added)
	assert.Equal(t, 0, i)
	assert.Len(t, l.Items, 3)
}

func TestSetAmountRemove(t *testing.T) {
	l := sample()
	require.NoError(t, l.SetAmount(0, "1.234,50"))
	assert.Equal(t, "1234.5", l.Items[0].Amount.String())

	require.NoError(t, l.SetAmount(0, "  "))
	assert.True(t, l.Items[0].Amount.IsZero())

	assert.Error(t, l.SetAmount(1, "abc"))
	assert.Error(t, l.SetAmount(1, "-3"))
	assert.Error(t, l.SetAmount(7, "3"))

	require.NoError(t, l.Remove(1))
	require.Len(t, l.Items, 2)
	assert.Equal(t, "BRL", l.Items[1].Currency.Code)
	assert.Error(t, l.Remove(2))
}

func TestEquivalents(t *testing.T) {
	l := sample()
	require.NoError(t, l.SetAmount(0, "100"))
	require.NoError(t, l.SetAmount(1, "10,5"))
	require.NoError(t, l.SetAmount(2, "20"))

	eqs, total, err := l.Equivalents(context.Background(), rates{"USDBRL": "5.6213", "EURBRL": "6.3333"}, "BRL")
	require.NoError(t, err)
	require.Len(t, eqs, 3)
	assert.Equal(t, "562.13", eqs[0].Value.Fixed())
	assert.Equal(t, "66.50", eqs[1].Value.Fixed())
	assert.Equal(t, "20.00", eqs[2].Value.Fixed())
	assert.Equal(t, "1", eqs[2].Rate.String())
	assert.Equal(t, "648.63", total.Fixed())
	assert.Equal(t, "BRL", total.Currency())

	_, _, err = l.Equivalents(context.Background(), rates{}, "BRL")
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cambio", "watchlist.yaml")

	empty, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)

	l := sample()
	require.NoError(t, l.SetAmount(1, "10,25"))
	require.NoError(t, l.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got.Items, 3)
	for i := range l.Items {
		assert.Equal(t, l.Items[i].Currency, got.Items[i].Currency)
		assert.Equal(t, l.Items[i].CountryName, got.Items[i].CountryName)
		assert.True(t, l.Items[i].Amount.Equal(got.Items[i].Amount), "item #%d amount %v want %v", i, got.Items[i].Amount, l.Items[i].Amount)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - currency: {code: USD}\n    amount: lots\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestUpdateConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.yaml")
	codes := []string{"USD", "EUR", "BRL", "JPY", "GBP", "CHF", "CAD", "AUD"}

	var wg sync.WaitGroup
	errs := make(chan error, len(codes))
	for _, code := range codes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- Update(path, func(l *List) error {
				l.Add(cambio.Entity{Currency: cambio.Currency{Code: code}})
				return nil
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, got.Items, len(codes))
	for _, code := range codes {
		assert.GreaterOrEqual(t, got.Index(code), 0, "missing %s", code)
	}
}

func TestUpdateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.yaml")
	require.NoError(t, sample().Save(path))

	boom := errors.New("boom")
	err := Update(path, func(l *List) error {
		require.NoError(t, l.Remove(0))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, got.Items, 3, "a failed update must not be written")
}
