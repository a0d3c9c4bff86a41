package spawn

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/field"
)

func TestDefaultTable(t *testing.T) {
	tbl, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if tbl.Objects != 10 || len(tbl.Entries) != 5 {
		t.Errorf("Unexpected table: %d objects, %d entries", tbl.Objects, len(tbl.Entries))
	}
}

func TestPopulateRespectsSpacing(t *testing.T) {
	tbl, _ := Default()
	area := DefaultArea()
	f := field.New(area.Rect())

	objects, zones := NewSpawner(tbl, area, 42).Populate(f, 1)
	if objects == 0 || objects > 10 {
		t.Errorf("Expected up to 10 objects, got %d", objects)
	}
	if zones < 1 || zones > 2 {
		t.Errorf("Expected up to 2 zones, got %d", zones)
	}

	objs := f.Objects()
	for i := range objs {
		if !area.Rect().Contains(objs[i].Pos) {
			t.Errorf("Object outside area: %v", objs[i].Pos)
		}
		if objs[i].Kind() == collectible.Dynamite {
			t.Error("Dynamite must not spawn on level 1")
		}
		for j := i + 1; j < len(objs); j++ {
			if d := objs[i].Pos.Dist(objs[j].Pos); d < area.MinSpacing {
				t.Errorf("Objects %d and %d too close: %v", i, j, d)
			}
		}
	}
}

func TestPopulateDeterministic(t *testing.T) {
	tbl, _ := Default()
	area := DefaultArea()
	a := field.New(area.Rect())
	b := field.New(area.Rect())
	NewSpawner(tbl, area, 7).Populate(a, 3)
	NewSpawner(tbl, area, 7).Populate(b, 3)

	if a.Count() != b.Count() {
		t.Fatalf("Counts differ: %d vs %d", a.Count(), b.Count())
	}
	for i := range a.Objects() {
		if a.Objects()[i].Pos != b.Objects()[i].Pos || a.Objects()[i].Kind() != b.Objects()[i].Kind() {
			t.Fatalf("Object %d differs", i)
		}
	}
}

func TestKindMix(t *testing.T) {
	tbl, _ := Default()
	s := NewSpawner(tbl, DefaultArea(), 1)
	counts := map[collectible.Kind]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[s.pickEntry(1).kind]++
	}
	rockShare := float64(counts[collectible.Rock]) / n
	if rockShare < 0.52 || rockShare > 0.58 {
		t.Errorf("Rock share %v, want ~0.55", rockShare)
	}
	if counts[collectible.Dynamite] != 0 {
		t.Error("Dynamite drawn below its min level")
	}

	counts = map[collectible.Kind]int{}
	for i := 0; i < n; i++ {
		counts[s.pickEntry(2).kind]++
	}
	if counts[collectible.Dynamite] == 0 {
		t.Error("Dynamite expected from level 2")
	}
}

func TestWeightedIndexZeroWeights(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	if weightedIndex(rng, []float64{0, 0}) != 0 {
		t.Error("All-zero weights should pick 0")
	}
	if weightedIndex(rng, []float64{0, 1}) != 1 {
		t.Error("Only positive weight should win")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("objects: 3\nentries:\n  - kind: diamond\n    weight: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("Expected ErrInvalidTable, got %v", err)
	}

	good := filepath.Join(dir, "good.yaml")
	body := "objects: 4\nentries:\n  - kind: gold\n    weight: 1\n    tiers: [0, 0, 1]\n"
	if err := os.WriteFile(good, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, err := Load(good)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	area := DefaultArea()
	f := field.New(area.Rect())
	NewSpawner(tbl, area, 3).Populate(f, 1)
	for _, o := range f.Objects() {
		if o.Kind() != collectible.Gold || o.Tier != collectible.Large {
			t.Errorf("Expected only large gold, got %v tier %d", o.Kind(), o.Tier)
		}
	}
	if len(f.Zones()) != 0 {
		t.Error("No zones configured")
	}
}
