package singleton

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"patternbook/pkg/config"
)

func TestSharedReturnsSameInstance(t *testing.T) {
	ResetForTesting()

	a := Shared()
	b := Shared()
	if a != b {
		t.Error("Shared() should return the identical instance")
	}
}

func TestSharedConcurrentAccess(t *testing.T) {
	ResetForTesting()

	const goroutines = 16
	instances := make([]*AppConfig, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = Shared()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if instances[i] != instances[0] {
			t.Fatalf("goroutine %d received a different instance", i)
		}
	}
}

func TestStateSharedAcrossAccessors(t *testing.T) {
	ResetForTesting()

	Shared().SetEnvironment(config.EnvProduction)

	// A "second" accessor sees the same state: there is only one instance.
	if got := Shared().Environment(); got != config.EnvProduction {
		t.Errorf("Environment() = %q, want %q", got, config.EnvProduction)
	}
	if got := Shared().ProfilePath(); got != "config/prod.toml" {
		t.Errorf("ProfilePath() = %q, want %q", got, "config/prod.toml")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	ResetForTesting()

	snap := Shared().Snapshot()
	snap.Environment = "mutated"

	if Shared().Environment() == "mutated" {
		t.Error("mutating a snapshot must not affect the shared instance")
	}
}

func TestSharedJournal(t *testing.T) {
	ResetForTesting()

	j1 := SharedJournal()
	j2 := SharedJournal()
	if j1 != j2 {
		t.Error("SharedJournal() should return the identical instance")
	}

	j1.Info("application started")
	j2.Error("something went wrong")

	want := []string{"[INFO] application started", "[ERROR] something went wrong"}
	if diff := cmp.Diff(want, j1.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
	if j1.Len() != 2 {
		t.Errorf("Len() = %d, want 2", j1.Len())
	}
}
