package configurator

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/trailercraft/storefront/internal/localstore"
	"github.com/trailercraft/storefront/internal/pricing"
)

const (
	FirstStep = 1
	LastStep  = 5

	storageKey   = "trailercraft-configurator"
	persistDelay = time.Second
)

// savedState is the opaque blob owned by the client.
type savedState struct {
	Config      Configuration `json:"config"`
	CurrentStep int           `json:"currentStep"`
	SavedAt     time.Time     `json:"savedAt"`
}

// Wizard is the configurator state container. Mutations recompute the price
// breakdown and, once Load has run, schedule a debounced persist. Safe for
// use from the UI goroutine plus the debounce timer.
type Wizard struct {
	mu        sync.Mutex
	log       *slog.Logger
	store     localstore.Store
	catalog   pricing.Catalog
	debounce  *localstore.Debouncer
	config    Configuration
	step      int
	breakdown pricing.Breakdown
	loaded    bool
}

func New(log *slog.Logger, store localstore.Store) *Wizard {
	return newWizard(log, store, persistDelay)
}

func newWizard(log *slog.Logger, store localstore.Store, delay time.Duration) *Wizard {
	w := &Wizard{
		log:      log,
		store:    store,
		catalog:  pricing.DefaultCatalog(),
		debounce: localstore.NewDebouncer(delay),
		config:   Defaults(),
		step:     FirstStep,
	}
	w.breakdown = w.catalog.Calculate(w.config.Selections)
	return w
}

// Load restores a previously saved configuration and step. Parse failures are
// logged and defaults kept. The loaded flag is set either way; persists are
// gated on it so defaults never clobber saved state before Load runs.
func (w *Wizard) Load() {
	w.mu.Lock()
	defer w.mu.Unlock()

	raw, err := w.store.Get(storageKey)
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			w.log.Warn("configurator state load failed", "err", err)
		}
		w.loaded = true
		return
	}

	var saved savedState
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		w.log.Warn("configurator state corrupt, using defaults", "err", err)
		w.loaded = true
		return
	}

	w.config = saved.Config
	w.step = clampStep(saved.CurrentStep)
	w.breakdown = w.catalog.Calculate(w.config.Selections)
	w.loaded = true
}

// Update mutates the configuration, recomputes pricing and schedules a
// persist.
func (w *Wizard) Update(mutate func(*Configuration)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	mutate(&w.config)
	w.breakdown = w.catalog.Calculate(w.config.Selections)
	w.schedulePersist()
}

func (w *Wizard) Next() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = clampStep(w.step + 1)
	w.schedulePersist()
}

func (w *Wizard) Prev() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = clampStep(w.step - 1)
	w.schedulePersist()
}

// GoTo jumps to a step, reporting whether the target was within range.
func (w *Wizard) GoTo(step int) bool {
	if step < FirstStep || step > LastStep {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = step
	w.schedulePersist()
	return true
}

func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Config() Configuration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.config
}

func (w *Wizard) Breakdown() pricing.Breakdown {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.breakdown
}

// StepValid reports whether the given step's required inputs are filled.
func (w *Wizard) StepValid(step int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	c := w.config

	switch step {
	case 1:
		return c.Size != ""
	case 2:
		return c.RangeHood != "" && c.FireSuppression != ""
	case 3:
		return c.ExteriorColor != "" && c.InteriorFinish != ""
	case 4:
		return c.Budget != "" && c.NeedFinancing != ""
	case 5:
		for _, f := range []string{c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.ZipCode, c.PaymentMethod} {
			if strings.TrimSpace(f) == "" {
				return false
			}
		}
		return true
	}
	return false
}

// Completion returns the percentage of required fields that are filled with
// something other than a "none"/"no" sentinel.
func (w *Wizard) Completion() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	done := 0
	for _, field := range requiredFields {
		v := strings.TrimSpace(field(w.config))
		if v != "" && v != "none" && v != "no" {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(requiredFields)) * 100))
}

// Reset restores defaults, returns to step 1 and clears the persisted entry.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.debounce.Stop()
	w.config = Defaults()
	w.step = FirstStep
	w.breakdown = w.catalog.Calculate(w.config.Selections)
	if err := w.store.Remove(storageKey); err != nil {
		w.log.Warn("configurator state clear failed", "err", err)
	}
}

// schedulePersist coalesces a burst of updates into one write after the quiet
// period. Caller holds the mutex.
func (w *Wizard) schedulePersist() {
	if !w.loaded {
		return
	}
	w.debounce.Trigger(w.persist)
}

func (w *Wizard) persist() {
	w.mu.Lock()
	saved := savedState{
		Config:      w.config,
		CurrentStep: w.step,
		SavedAt:     time.Now().UTC(),
	}
	w.mu.Unlock()

	raw, err := json.Marshal(saved)
	if err != nil {
		w.log.Error("configurator state marshal failed", "err", err)
		return
	}
	if err := w.store.Set(storageKey, string(raw)); err != nil {
		w.log.Warn("configurator state persist failed", "err", err)
	}
}

func clampStep(step int) int {
	if step < FirstStep {
		return FirstStep
	}
	if step > LastStep {
		return LastStep
	}
	return step
}
