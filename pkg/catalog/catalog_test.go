package catalog

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCatalogSeed(t *testing.T) {
	c := New()
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	var got []string
	for _, p := range c.All() {
		got = append(got, p.Name())
	}
	want := []string{"veggie", "regina", "deluxe"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("catalog order mismatch (-want +got):\n%s", diff)
	}
}

func TestFindSeededPrices(t *testing.T) {
	c := New()
	cases := []struct {
		name  string
		price uint32
	}{
		{"veggie", 10},
		{"regina", 12},
		{"deluxe", 14},
	}
	for _, tc := range cases {
		out := c.Find(tc.name, true)
		f, ok := out.(Found)
		if !ok {
			t.Fatalf("Find(%q) = %T, want Found", tc.name, out)
		}
		if f.Pizza.Name() != tc.name || f.Pizza.Price() != tc.price {
			t.Errorf("Find(%q) = {%s %d}, want {%s %d}", tc.name, f.Pizza.Name(), f.Pizza.Price(), tc.name, tc.price)
		}
	}
}

func TestFindMissingName(t *testing.T) {
	for _, c := range []*Catalog{New(), {}} {
		if out := c.Find("regina", false); out != (NameMissing{}) {
			t.Errorf("Find(absent) = %#v, want NameMissing", out)
		}
	}
}

func TestFindNotFound(t *testing.T) {
	c := New()
	cases := []string{"unknown", "unknown pizza", "Regina", "REGINA", " regina", ""}
	for _, name := range cases {
		out := c.Find(name, true)
		nf, ok := out.(NotFound)
		if !ok {
			t.Errorf("Find(%q) = %T, want NotFound", name, out)
			continue
		}
		if nf.Name != name {
			t.Errorf("NotFound.Name = %q, want %q", nf.Name, name)
		}
	}
}

func TestOutcomeLabels(t *testing.T) {
	cases := []struct {
		out  Outcome
		want string
	}{
		{Found{}, "found"},
		{NotFound{}, "not_found"},
		{NameMissing{}, "name_missing"},
	}
	for _, tc := range cases {
		if got := tc.out.Label(); got != tc.want {
			t.Errorf("%T.Label() = %q, want %q", tc.out, got, tc.want)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := New()
	all := c.All()
	all[0] = NewPizza("mutated", 0)

	if out, ok := c.Find("veggie", true).(Found); !ok || out.Pizza.Price() != 10 {
		t.Errorf("catalog changed through All(): %#v", out)
	}
}

func TestFindConcurrentReads(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := c.Find("deluxe", true).(Found); !ok {
					t.Error("deluxe not found")
					return
				}
			}
		}()
	}
	wg.Wait()
}
