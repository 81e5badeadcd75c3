// Package cart is the client-held shopping cart: a single-owner aggregate
// persisted through a pluggable store on every mutation. It is never
// server-authoritative; checkout re-prices every line against live products.
package cart

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrItemNotFound = errors.New("cart item not found")

// Item is one cart line. PriceEach is the price observed at add time; it is
// display-only and replaced by the live price at checkout.
type Item struct {
	ID        string          `json:"id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	PriceEach decimal.Decimal `json:"price_each"`
	AddedAt   time.Time       `json:"added_at"`
}

// Store persists the serialized cart. Load returns nil bytes when no cart has
// been saved yet.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Cart has exactly one owner; no locking is needed.
type Cart struct {
	items []Item
	store Store
}

func New(store Store) (*Cart, error) {
	c := &Cart{store: store}
	data, err := store.Load()
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &c.items); err != nil {
			// A corrupt saved cart is dropped rather than bricking the UI.
			c.items = nil
		}
	}
	return c, nil
}

// Add puts a product in the cart or bumps its quantity if already present.
func (c *Cart) Add(productID uint, price decimal.Decimal, quantity int) (Item, error) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += quantity
			return c.items[i], c.persist()
		}
	}
	item := Item{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		PriceEach: price,
		AddedAt:   time.Now(),
	}
	c.items = append(c.items, item)
	return item, c.persist()
}

// SetQuantity updates a line; quantity 0 removes it.
func (c *Cart) SetQuantity(productID uint, quantity int) error {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			if quantity < 1 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Quantity = quantity
			}
			return c.persist()
		}
	}
	return ErrItemNotFound
}

func (c *Cart) Remove(productID uint) error {
	return c.SetQuantity(productID, 0)
}

func (c *Cart) Clear() error {
	c.items = nil
	return c.persist()
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal sums the add-time prices, 2dp. Indicative only.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.PriceEach.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}

func (c *Cart) persist() error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return err
	}
	return c.store.Save(data)
}

// FileStore keeps the cart in a local file, the desktop analog of the web
// client's local storage.
type FileStore struct {
	Path string
}

func (f FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (f FileStore) Save(data []byte) error {
	return os.WriteFile(f.Path, data, 0o644)
}
