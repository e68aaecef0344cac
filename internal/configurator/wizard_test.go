package configurator

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/trailercraft/storefront/internal/localstore"
)

func testWizard(t *testing.T) (*Wizard, *localstore.Memory) {
	t.Helper()
	store := localstore.NewMemory()
	w := newWizard(slog.Default(), store, 20*time.Millisecond)
	w.Load()
	return w, store
}

func fillContact(c *Configuration) {
	c.FirstName = "June"
	c.LastName = "Park"
	c.Email = "june@example.com"
	c.Phone = "5125550142"
	c.Address = "410 Brazos St, Austin, TX"
	c.ZipCode = "78701"
	c.PaymentMethod = "cash"
}

func TestStepValidity(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Configuration)
		step   int
		want   bool
	}{
		{"step 1 empty size", func(c *Configuration) {}, 1, false},
		{"step 1 with size", func(c *Configuration) { c.Size = "7x12" }, 1, true},
		{"step 2 missing fire suppression", func(c *Configuration) { c.RangeHood = "6ft"; c.FireSuppression = "" }, 2, false},
		{"step 2 complete", func(c *Configuration) { c.RangeHood = "6ft"; c.FireSuppression = "yes" }, 2, true},
		{"step 3 missing finish", func(c *Configuration) { c.ExteriorColor = "matte-black" }, 3, false},
		{"step 3 complete", func(c *Configuration) { c.ExteriorColor = "matte-black"; c.InteriorFinish = "standard" }, 3, true},
		{"step 4 missing budget", func(c *Configuration) { c.NeedFinancing = "yes" }, 4, false},
		{"step 4 complete", func(c *Configuration) { c.Budget = "50k-75k"; c.NeedFinancing = "yes" }, 4, true},
		{"step 5 complete", fillContact, 5, true},
		{"step 5 blank phone", func(c *Configuration) { fillContact(c); c.Phone = "" }, 5, false},
		{"step 5 whitespace-only address", func(c *Configuration) { fillContact(c); c.Address = "   " }, 5, false},
		{"out of range step", func(c *Configuration) {}, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := testWizard(t)
			w.Update(tt.mutate)
			if got := w.StepValid(tt.step); got != tt.want {
				t.Errorf("StepValid(%d) = %v, want %v", tt.step, got, tt.want)
			}
		})
	}
}

func TestNavigationClamps(t *testing.T) {
	w, _ := testWizard(t)

	w.Prev()
	if got := w.Step(); got != FirstStep {
		t.Errorf("Prev below first: step = %d, want %d", got, FirstStep)
	}

	for i := 0; i < 10; i++ {
		w.Next()
	}
	if got := w.Step(); got != LastStep {
		t.Errorf("Next past last: step = %d, want %d", got, LastStep)
	}

	if w.GoTo(0) || w.GoTo(6) {
		t.Error("GoTo accepted an out-of-range step")
	}
	if !w.GoTo(3) {
		t.Error("GoTo(3) rejected")
	}
	if got := w.Step(); got != 3 {
		t.Errorf("step = %d, want 3", got)
	}
}

func TestUpdateRecomputesBreakdown(t *testing.T) {
	w, _ := testWizard(t)

	w.Update(func(c *Configuration) { c.Size = "7x12" })
	if got := w.Breakdown().TotalCents; got != 2590000 {
		t.Errorf("total = %d, want 2590000", got)
	}

	w.Update(func(c *Configuration) { c.Refrigeration = []string{"reach-in"} })
	if got := w.Breakdown().TotalCents; got != 2590000+160000 {
		t.Errorf("total = %d, want %d", got, 2590000+160000)
	}
}

func TestDebouncedPersistCoalesces(t *testing.T) {
	store := localstore.NewMemory()
	w := newWizard(slog.Default(), store, 30*time.Millisecond)
	w.Load()

	w.Update(func(c *Configuration) { c.Size = "7x12" })
	w.Update(func(c *Configuration) { c.Porch = "4ft" })
	w.Update(func(c *Configuration) { c.RangeHood = "6ft" })

	// Nothing written during the burst.
	if _, err := store.Get("trailercraft-configurator"); err == nil {
		t.Error("state persisted before the quiet period elapsed")
	}

	time.Sleep(120 * time.Millisecond)

	raw, err := store.Get("trailercraft-configurator")
	if err != nil {
		t.Fatalf("state not persisted after quiet period: %v", err)
	}
	var saved savedState
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		t.Fatalf("persisted state unparseable: %v", err)
	}
	if saved.Config.RangeHood != "6ft" || saved.Config.Porch != "4ft" {
		t.Errorf("persisted config missing later updates: %+v", saved.Config)
	}
	if saved.SavedAt.IsZero() {
		t.Error("savedAt not set")
	}
}

func TestNoPersistBeforeLoad(t *testing.T) {
	store := localstore.NewMemory()
	w := newWizard(slog.Default(), store, 10*time.Millisecond)

	// Load has not run: mutations must not clobber saved state.
	w.Update(func(c *Configuration) { c.Size = "8x16" })
	time.Sleep(60 * time.Millisecond)

	if _, err := store.Get("trailercraft-configurator"); err == nil {
		t.Error("persisted before Load completed")
	}
}

func TestLoadRestoresSavedState(t *testing.T) {
	store := localstore.NewMemory()
	saved := savedState{CurrentStep: 3, SavedAt: time.Now()}
	saved.Config = Defaults()
	saved.Config.Size = "8x20"
	raw, _ := json.Marshal(saved)
	_ = store.Set("trailercraft-configurator", string(raw))

	w := newWizard(slog.Default(), store, 10*time.Millisecond)
	w.Load()

	if got := w.Step(); got != 3 {
		t.Errorf("step = %d, want 3", got)
	}
	if got := w.Config().Size; got != "8x20" {
		t.Errorf("size = %q, want 8x20", got)
	}
	if got := w.Breakdown().TotalCents; got != 3690000 {
		t.Errorf("breakdown not recomputed on load: total = %d", got)
	}
}

func TestLoadCorruptStateKeepsDefaults(t *testing.T) {
	store := localstore.NewMemory()
	_ = store.Set("trailercraft-configurator", "{not json")

	w := newWizard(slog.Default(), store, 10*time.Millisecond)
	w.Load()

	if got := w.Step(); got != FirstStep {
		t.Errorf("step = %d, want %d", got, FirstStep)
	}
	if got := w.Config().Size; got != "" {
		t.Errorf("size = %q, want empty default", got)
	}
}

func TestCompletion(t *testing.T) {
	w, _ := testWizard(t)

	if got := w.Completion(); got != 0 {
		t.Errorf("fresh completion = %d, want 0", got)
	}

	w.Update(func(c *Configuration) {
		c.Size = "7x12"
		c.RangeHood = "6ft"
		c.FireSuppression = "yes"
		c.ExteriorColor = "standard-white"
		c.InteriorFinish = "standard"
		c.Budget = "50k-75k"
		c.NeedFinancing = "yes"
	})
	// 7 of 14 required fields filled.
	if got := w.Completion(); got != 50 {
		t.Errorf("completion = %d, want 50", got)
	}

	// Sentinels do not count.
	w.Update(func(c *Configuration) { c.RangeHood = "none"; c.NeedFinancing = "no" })
	if got := w.Completion(); got != 36 {
		t.Errorf("completion with sentinels = %d, want 36", got)
	}
}

func TestResetClearsStorage(t *testing.T) {
	store := localstore.NewMemory()
	w := newWizard(slog.Default(), store, 10*time.Millisecond)
	w.Load()

	w.Update(func(c *Configuration) { c.Size = "7x12" })
	w.GoTo(4)
	time.Sleep(60 * time.Millisecond)
	if _, err := store.Get("trailercraft-configurator"); err != nil {
		t.Fatalf("expected persisted state: %v", err)
	}

	w.Reset()

	if got := w.Step(); got != FirstStep {
		t.Errorf("step = %d, want %d", got, FirstStep)
	}
	if got := w.Config().Size; got != "" {
		t.Errorf("size = %q, want empty", got)
	}
	if _, err := store.Get("trailercraft-configurator"); err == nil {
		t.Error("persisted entry survived Reset")
	}
}
