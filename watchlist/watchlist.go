// Package watchlist keeps the user's selected currencies and the amount held in each.
//
// The list is stored as a YAML file. Update holds an exclusive file lock across a whole
// read-modify-write, so that concurrent commands do not lose updates.
package watchlist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/etnz/cambio"
	"github.com/gofrs/flock"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Item is a selected currency.
type Item struct {
	Currency    cambio.Currency
	Amount      decimal.Decimal
	CountryCode string // region the currency was picked from, if any
	CountryName string
}

// Money returns the item amount in its currency.
func (it Item) Money() cambio.Money { return cambio.M(it.Amount, it.Currency.Code) }

// List is an ordered list of selected currencies, one item per currency.
type List struct {
	Items []Item
}

// Add appends the currency of a selected entity with a zero amount. It returns the index
// of the item and false if the currency is already in the list.
func (l *List) Add(e cambio.Entity) (int, bool) {
	if i := l.Index(e.Currency.Code); i >= 0 {
		return i, false
	}
	l.Items = append(l.Items, Item{
		Currency:    e.Currency,
		CountryCode: e.Code,
		CountryName: e.Name,
	})
	return len(l.Items) - 1, true
}

// Index returns the index of the item in currency code, or -1.
func (l *List) Index(code string) int {
	for i, it := range l.Items {
		if it.Currency.Code == code {
			return i
		}
	}
	return -1
}

// SetAmount parses a user typed amount into item i. A blank text resets the amount to zero.
func (l *List) SetAmount(i int, text string) error {
	if err := l.check(i); err != nil {
		return err
	}
	amount := decimal.Zero
	if strings.TrimSpace(text) != "" {
		var err error
		if amount, err = cambio.ParseAmount(text); err != nil {
			return err
		}
	}
	if amount.IsNegative() {
		return fmt.Errorf("invalid amount %q: negative", text)
	}
	l.Items[i].Amount = amount
	return nil
}

// Remove deletes item i.
func (l *List) Remove(i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	return nil
}

func (l *List) check(i int) error {
	if i < 0 || i >= len(l.Items) {
		return fmt.Errorf("no item #%d, the list has %d items", i, len(l.Items))
	}
	return nil
}

// Equivalent is an item amount converted into a base currency.
type Equivalent struct {
	Item  Item
	Rate  decimal.Decimal
	Value cambio.Money
}

// Equivalents converts every item amount into base. Items already in base use a rate of 1.
// It returns the equivalents and their total.
func (l *List) Equivalents(ctx context.Context, rates cambio.Rates, base string) ([]Equivalent, cambio.Money, error) {
	total := decimal.Zero
	eqs := make([]Equivalent, 0, len(l.Items))
	for _, it := range l.Items {
		rate := decimal.NewFromInt(1)
		if it.Currency.Code != base {
			var err error
			if rate, err = rates.Last(ctx, it.Currency.Code, base); err != nil {
				return nil, cambio.Money{}, fmt.Errorf("cannot convert %s into %s: %w", it.Currency.Code, base, err)
			}
		}
		value := it.Amount.Mul(rate).Round(2)
		total = total.Add(value)
		eqs = append(eqs, Equivalent{Item: it, Rate: rate, Value: cambio.M(value, base)})
	}
	return eqs, cambio.M(total, base), nil
}

// item is the YAML form of an Item, amounts are kept as text to stay exact.
type item struct {
	Currency    cambio.Currency `yaml:"currency"`
	Amount      string          `yaml:"amount"`
	CountryCode string          `yaml:"country_code,omitempty"`
	CountryName string          `yaml:"country_name,omitempty"`
}

type file struct {
	Items []item `yaml:"items"`
}

func lockFor(path string) *flock.Flock { return flock.New(path + ".lock") }

// Load reads the list at path. A missing file is an empty list.
func Load(path string) (*List, error) {
	fl := lockFor(path)
	if err := fl.RLock(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return new(List), nil
		}
		return nil, fmt.Errorf("cannot lock %q: %w", path, err)
	}
	defer fl.Unlock()
	return read(path)
}

// Save writes the list to path, creating its directory if needed.
func (l *List) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	fl := lockFor(path)
	if err := fl.Lock(); err != nil {
		return fmt.Errorf("cannot lock %q: %w", path, err)
	}
	defer fl.Unlock()
	return l.write(path)
}

// Update reads the list at path, applies fn and writes the result back, all under an
// exclusive lock. Nothing is written if fn fails.
func Update(path string, fn func(*List) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	fl := lockFor(path)
	if err := fl.Lock(); err != nil {
		return fmt.Errorf("cannot lock %q: %w", path, err)
	}
	defer fl.Unlock()

	l, err := read(path)
	if err != nil {
		return err
	}
	if err := fn(l); err != nil {
		return err
	}
	return l.write(path)
}

// read decodes the file at path, the caller holds the lock.
func read(path string) (*List, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("no watchlist yet", "path", path)
		return new(List), nil
	}
	if err != nil {
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("invalid watchlist %q: %w", path, err)
	}
	l := &List{Items: make([]Item, 0, len(f.Items))}
	for _, it := range f.Items {
		amount := decimal.Zero
		if it.Amount != "" {
			if amount, err = decimal.NewFromString(it.Amount); err != nil {
				return nil, fmt.Errorf("invalid watchlist %q: %s amount: %w", path, it.Currency.Code, err)
			}
		}
		l.Items = append(l.Items, Item{
			Currency:    it.Currency,
			Amount:      amount,
			CountryCode: it.CountryCode,
			CountryName: it.CountryName,
		})
	}
	return l, nil
}

// write encodes l to path, the caller holds the lock.
func (l *List) write(path string) error {
	f := file{Items: make([]item, 0, len(l.Items))}
	for _, it := range l.Items {
		f.Items = append(f.Items, item{
			Currency:    it.Currency,
			Amount:      it.Amount.String(),
			CountryCode: it.CountryCode,
			CountryName: it.CountryName,
		})
	}
	content, err := yaml.Marshal(&f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
