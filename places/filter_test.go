package places

import "testing"

func testCatalog(t *testing.T) []*Place {
	t.Helper()
	if catalog == nil {
		Load()
	}
	return Catalog()
}

// indexOf returns the catalog position of a place, or -1.
func indexOf(catalog []*Place, p *Place) int {
	for i, c := range catalog {
		if c == p {
			return i
		}
	}
	return -1
}

func TestFilterAllEmptyQueryReturnsCatalog(t *testing.T) {
	c := testCatalog(t)
	got := Filter(c, "all", "")
	if len(got) != len(c) {
		t.Fatalf("Filter(all, \"\") returned %d places, want %d", len(got), len(c))
	}
	for i := range got {
		if got[i] != c[i] {
			t.Errorf("result[%d] = %q, want %q", i, got[i].ID, c[i].ID)
		}
	}
}

func TestFilterIsOrderedSubsequence(t *testing.T) {
	c := testCatalog(t)
	queries := []struct{ cat, q string }{
		{"all", "tower"},
		{"landmark", ""},
		{"all", "한강"},
		{"park", "panoramas"},
		{"all", "  TOWER  "},
	}
	for _, tt := range queries {
		got := Filter(c, tt.cat, tt.q)
		last := -1
		for _, p := range got {
			idx := indexOf(c, p)
			if idx < 0 {
				t.Fatalf("Filter(%q, %q) returned a place not in the catalog: %q", tt.cat, tt.q, p.ID)
			}
			if idx <= last {
				t.Errorf("Filter(%q, %q) broke catalog order at %q", tt.cat, tt.q, p.ID)
			}
			last = idx
		}
	}
}

func TestFilterSoundAndComplete(t *testing.T) {
	c := testCatalog(t)
	got := Filter(c, "landmark", "tower")
	in := map[string]bool{}
	for _, p := range got {
		if p.Category != "landmark" {
			t.Errorf("%q returned with category %q", p.ID, p.Category)
		}
		in[p.ID] = true
	}
	// Completeness: every catalog place satisfying both predicates is present.
	for _, p := range c {
		if p.Category == "landmark" && matches(p, "tower") && !in[p.ID] {
			t.Errorf("%q satisfies predicates but was not returned", p.ID)
		}
	}
}

func TestFilterExamples(t *testing.T) {
	c := testCatalog(t)

	got := Filter(c, "landmark", "")
	wantIDs := []string{"nseoul", "lotte-tower"}
	if len(got) != len(wantIDs) {
		t.Fatalf("Filter(landmark, \"\") = %d places, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("result[%d] = %q, want %q", i, got[i].ID, id)
		}
	}

	got = Filter(c, "all", "tower")
	wantIDs = []string{"nseoul", "lotte-tower"}
	if len(got) != len(wantIDs) {
		t.Fatalf("Filter(all, tower) = %d places, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("result[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestFilterKoreanQuery(t *testing.T) {
	c := testCatalog(t)
	got := Filter(c, "all", "한옥")
	if len(got) != 1 || got[0].ID != "bukchon" {
		t.Fatalf("Filter(all, 한옥) = %v, want [bukchon]", ids(got))
	}
}

func TestFilterEmptyResult(t *testing.T) {
	c := testCatalog(t)
	// Category exists but no name/summary match within it.
	if got := Filter(c, "subway", "tower"); len(got) != 0 {
		t.Errorf("Filter(subway, tower) = %v, want empty", ids(got))
	}
	if got := Filter(nil, "all", ""); len(got) != 0 {
		t.Errorf("Filter on empty catalog returned %d places", len(got))
	}
}

func TestFilterDeterministic(t *testing.T) {
	c := testCatalog(t)
	a := Filter(c, "all", "night")
	b := Filter(c, "all", "night")
	if len(a) != len(b) {
		t.Fatal("same inputs produced different result lengths")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("result differs at %d: %q vs %q", i, a[i].ID, b[i].ID)
		}
	}
}

func ids(ps []*Place) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}
