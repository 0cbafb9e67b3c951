package places

import "testing"

func TestCatalogLoads(t *testing.T) {
	c := testCatalog(t)
	if len(c) != 10 {
		t.Fatalf("catalog has %d places, want 10", len(c))
	}
	for _, p := range c {
		if err := validate(p); err != nil {
			t.Errorf("catalog entry invalid: %v", err)
		}
	}
}

func TestGet(t *testing.T) {
	testCatalog(t)
	if p := Get("bukchon"); p == nil || p.Name["en"] != "Bukchon Hanok Village" {
		t.Errorf("Get(bukchon) = %v", p)
	}
	if p := Get("nowhere"); p != nil {
		t.Errorf("Get(nowhere) = %v, want nil", p)
	}
}

func TestValidCategory(t *testing.T) {
	testCatalog(t)
	for _, key := range Categories() {
		if !ValidCategory(key) {
			t.Errorf("ValidCategory(%q) = false", key)
		}
	}
	if ValidCategory("castle") {
		t.Error("ValidCategory accepted a key outside the closed set")
	}
}

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want bool
	}{
		{Coordinate{37.5, 127.0}, true},
		{Coordinate{-90, -180}, true},
		{Coordinate{90.1, 0}, false},
		{Coordinate{0, 180.1}, false},
	}
	for _, tt := range tests {
		if got := tt.c.Valid(); got != tt.want {
			t.Errorf("Valid(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}
