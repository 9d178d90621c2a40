package sprite

import (
	"errors"
	"testing"

	"github.com/vbelenko/termblast/internal/core"
)

func TestAllocateReturnsUniqueSlots(t *testing.T) {
	r := NewRegistryWithCapacity(16)

	seen := make(map[int]bool)
	for i := 0; i < 16; i++ {
		idx, err := r.Allocate()
		if err != nil {
			t.Fatalf("Allocate() failed at %d: %v", i, err)
		}
		if seen[idx] {
			t.Fatalf("Allocate() returned slot %d twice", idx)
		}
		seen[idx] = true
	}
}

func TestAllocateFirstFreeInIndexOrder(t *testing.T) {
	r := NewRegistryWithCapacity(8)

	for i := 0; i < 5; i++ {
		if _, err := r.Allocate(); err != nil {
			t.Fatalf("Allocate() failed: %v", err)
		}
	}

	r.Release(2)
	r.Release(0)

	idx, err := r.Allocate()
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	if idx != 0 {
		t.Errorf("Allocate() = %d, want lowest free slot 0", idx)
	}

	idx, err = r.Allocate()
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	if idx != 2 {
		t.Errorf("Allocate() = %d, want next free slot 2", idx)
	}
}

func TestAllocateExhaustion(t *testing.T) {
	r := NewRegistryWithCapacity(3)

	for i := 0; i < 3; i++ {
		if _, err := r.Allocate(); err != nil {
			t.Fatalf("Allocate() failed: %v", err)
		}
	}

	_, err := r.Allocate()
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("Allocate() on full registry: err = %v, want ErrExhausted", err)
	}

	// Slot 0 must not have been disturbed by the failed allocation.
	if !r.Active(0) {
		t.Error("failed Allocate() deactivated slot 0")
	}
}

func TestReleaseZeroesRecord(t *testing.T) {
	r := NewRegistryWithCapacity(4)

	idx, err := r.Allocate()
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}

	r.Write(idx, Attr{
		Screen: core.NewRect(100, 200, 64, 64),
		Atlas:  core.NewRect(0.25, 0.25, 0.25, 0.25),
	})

	r.Release(idx)

	if r.Active(idx) {
		t.Error("Release() left slot active")
	}
	if !r.At(idx).IsZero() {
		t.Errorf("Release() left record %+v, want zeroed", r.At(idx))
	}
}

func TestReleasedSlotStaysZeroedUntilReallocated(t *testing.T) {
	r := NewRegistryWithCapacity(4)

	idx, _ := r.Allocate()
	r.Write(idx, Attr{Screen: core.NewRect(1, 2, 3, 4)})
	r.Release(idx)

	// Before reallocation the slot contributes nothing to the draw set.
	for i, a := range r.Attrs() {
		if i == idx && !a.IsZero() {
			t.Fatalf("slot %d not zeroed after release", idx)
		}
	}

	again, err := r.Allocate()
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	if again != idx {
		t.Errorf("Allocate() = %d, want recycled slot %d", again, idx)
	}
}

func TestWriteDoesNotChangeActivation(t *testing.T) {
	r := NewRegistryWithCapacity(4)

	idx, _ := r.Allocate()
	r.Write(idx, Attr{Screen: core.NewRect(5, 5, 10, 10)})

	if !r.Active(idx) {
		t.Error("Write() deactivated the slot")
	}
	if got := r.At(idx).Screen; got != core.NewRect(5, 5, 10, 10) {
		t.Errorf("At() = %+v, want written rect", got)
	}
}

func TestOutOfRangeOperationsAreSafe(t *testing.T) {
	r := NewRegistryWithCapacity(2)

	r.Release(-1)
	r.Release(99)
	r.Write(-1, Attr{})
	r.Write(99, Attr{})

	if r.Active(-1) || r.Active(99) {
		t.Error("out-of-range slots reported active")
	}
	if !r.At(99).IsZero() {
		t.Error("out-of-range At() returned non-zero record")
	}
}

func TestActiveCount(t *testing.T) {
	r := NewRegistryWithCapacity(10)

	a, _ := r.Allocate()
	b, _ := r.Allocate()
	if got := r.ActiveCount(); got != 2 {
		t.Errorf("ActiveCount() = %d, want 2", got)
	}

	r.Release(a)
	if got := r.ActiveCount(); got != 1 {
		t.Errorf("ActiveCount() = %d, want 1", got)
	}

	r.Release(b)
	if got := r.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount() = %d, want 0", got)
	}
}
