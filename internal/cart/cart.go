// Package cart is the client-side shopping cart. State survives reloads via
// the localstore port; totals resolve upgrade prices through an injected
// resolver.
package cart

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/trailercraft/storefront/internal/localstore"
	"github.com/trailercraft/storefront/internal/pricing"
)

const storageKey = "trailercraft-cart"

// Item is one cart line. At most one item exists per truck id; Upgrades has
// set semantics but is stored as a slice.
type Item struct {
	TruckID        string   `json:"truckId"`
	Name           string   `json:"name"`
	BasePriceCents int64    `json:"basePriceCents"`
	Quantity       int      `json:"quantity"`
	Upgrades       []string `json:"upgrades"`
}

// PriceResolver maps an upgrade id to its price. Unresolvable ids price at
// zero.
type PriceResolver func(upgradeID string) (int64, bool)

type Cart struct {
	mu      sync.Mutex
	log     *slog.Logger
	store   localstore.Store
	resolve PriceResolver
	items   []Item
	loaded  bool
}

// New builds a cart over the given store. A nil resolver falls back to the
// default upgrade catalog.
func New(log *slog.Logger, store localstore.Store, resolve PriceResolver) *Cart {
	if resolve == nil {
		resolve = pricing.UpgradePrice
	}
	return &Cart{log: log, store: store, resolve: resolve}
}

// Load reads the saved cart once at startup. Corrupt saved data is discarded
// and logged; the cart starts empty rather than crashing.
func (c *Cart) Load() {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := c.store.Get(storageKey)
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			c.log.Warn("cart load failed", "err", err)
		}
		c.loaded = true
		return
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.log.Warn("saved cart corrupt, starting empty", "err", err)
		c.loaded = true
		return
	}

	c.items = items
	c.loaded = true
}

// Add merges an item into the cart. If the truck is already present a
// non-empty upgrades list replaces its selection (quantity unchanged) while
// an empty list increments quantity (upgrades unchanged). New trucks enter
// with quantity 1.
func (c *Cart) Add(item Item, upgrades []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].TruckID != item.TruckID {
			continue
		}
		if len(upgrades) > 0 {
			c.items[i].Upgrades = append([]string(nil), upgrades...)
		} else {
			c.items[i].Quantity++
		}
		c.persist()
		return
	}

	item.Quantity = 1
	item.Upgrades = append([]string(nil), upgrades...)
	c.items = append(c.items, item)
	c.persist()
}

// Remove deletes the matching line; no-op if absent.
func (c *Cart) Remove(truckID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(truckID)
	c.persist()
}

// UpdateQuantity sets the quantity exactly; zero or below removes the line.
func (c *Cart) UpdateQuantity(truckID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty <= 0 {
		c.removeLocked(truckID)
		c.persist()
		return
	}
	for i := range c.items {
		if c.items[i].TruckID == truckID {
			c.items[i].Quantity = qty
			break
		}
	}
	c.persist()
}

// ToggleUpgrade flips membership of upgradeID in the line's upgrade set.
// No-op if the truck is not in the cart.
func (c *Cart) ToggleUpgrade(truckID, upgradeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].TruckID != truckID {
			continue
		}
		kept := c.items[i].Upgrades[:0]
		found := false
		for _, u := range c.items[i].Upgrades {
			if u == upgradeID {
				found = true
				continue
			}
			kept = append(kept, u)
		}
		if !found {
			kept = append(kept, upgradeID)
		}
		c.items[i].Upgrades = kept
		c.persist()
		return
	}
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	for i := range out {
		out[i].Upgrades = append([]string(nil), c.items[i].Upgrades...)
	}
	return out
}

// Total sums (base + selected upgrades) * quantity over all lines, in cents.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, item := range c.items {
		line := item.BasePriceCents
		for _, id := range item.Upgrades {
			if price, ok := c.resolve(id); ok {
				line += price
			}
		}
		total += line * int64(item.Quantity)
	}
	return total
}

// Count sums line quantities.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persist()
}

func (c *Cart) removeLocked(truckID string) {
	for i := range c.items {
		if c.items[i].TruckID == truckID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// persist writes the whole cart on every change once the initial load is
// done. Caller holds the mutex.
func (c *Cart) persist() {
	if !c.loaded {
		return
	}
	raw, err := json.Marshal(c.items)
	if err != nil {
		c.log.Error("cart marshal failed", "err", err)
		return
	}
	if err := c.store.Set(storageKey, string(raw)); err != nil {
		c.log.Warn("cart persist failed", "err", err)
	}
}
