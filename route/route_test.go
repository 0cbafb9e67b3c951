package route

import (
	"net/url"
	"strings"
	"testing"
)

func TestDirectionsNoOverride(t *testing.T) {
	stops := []Point{
		{37.58, 126.98},
		{37.55, 126.99},
		{37.51, 127.06},
	}
	got, err := Directions(stops, nil)
	if err != nil {
		t.Fatalf("Directions: %v", err)
	}
	want := "https://www.google.com/maps/dir/?api=1" +
		"&origin=37.58,126.98" +
		"&destination=37.51,127.06" +
		"&waypoints=" + url.QueryEscape("37.55,126.99") +
		"&travelmode=walking"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestDirectionsWithOverride(t *testing.T) {
	stops := []Point{
		{37.58, 126.98},
		{37.55, 126.99},
		{37.51, 127.06},
	}
	origin := &Point{Lat: 37.5665, Lng: 126.978}
	got, err := Directions(stops, origin)
	if err != nil {
		t.Fatalf("Directions: %v", err)
	}
	// The first stop is kept as the first waypoint, not dropped.
	want := "https://www.google.com/maps/dir/?api=1" +
		"&origin=37.5665,126.978" +
		"&destination=37.51,127.06" +
		"&waypoints=" + url.QueryEscape("37.58,126.98|37.55,126.99") +
		"&travelmode=walking"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestDirectionsSinglePlace(t *testing.T) {
	stops := []Point{{37.58, 126.98}}
	got, err := Directions(stops, nil)
	if err != nil {
		t.Fatalf("Directions: %v", err)
	}
	if !strings.Contains(got, "origin=37.58,126.98") || !strings.Contains(got, "destination=37.58,126.98") {
		t.Errorf("single place should be both origin and destination: %s", got)
	}
	if strings.Contains(got, "waypoints=") {
		t.Errorf("single place route must have no waypoints: %s", got)
	}
}

func TestDirectionsErrors(t *testing.T) {
	if _, err := Directions(nil, nil); err != ErrNoPlaces {
		t.Errorf("empty input: got %v, want ErrNoPlaces", err)
	}
	var many []Point
	for i := 0; i < MaxStops+1; i++ {
		many = append(many, Point{37.5, 127.0})
	}
	if _, err := Directions(many, nil); err != ErrTooManyStops {
		t.Errorf("11 stops: got %v, want ErrTooManyStops", err)
	}
}

func TestDirectionsFallbackAfterLocationFailure(t *testing.T) {
	// A denied/failed location lookup means no override: the first filtered
	// place becomes the implicit origin and the build still succeeds.
	stops := []Point{
		{37.58, 126.98},
		{37.55, 126.99},
		{37.51, 127.06},
	}
	got, err := Directions(stops, nil)
	if err != nil {
		t.Fatalf("Directions without override: %v", err)
	}
	if !strings.Contains(got, "origin=37.58,126.98") {
		t.Errorf("expected first place as implicit origin: %s", got)
	}
}

func TestDirectionsEncoding(t *testing.T) {
	stops := []Point{
		{37.5826, 126.983},
		{37.5512, 126.9882},
		{37.5112, 127.0592},
		{37.5164, 127.0735},
	}
	got, err := Directions(stops, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Waypoints are percent-encoded as a group: the pipe must not appear raw.
	if strings.Contains(got, "|") {
		t.Errorf("raw pipe in URL: %s", got)
	}
	if !strings.Contains(got, "waypoints=37.5512%2C126.9882%7C37.5112%2C127.0592") {
		t.Errorf("unexpected waypoint encoding: %s", got)
	}
	if _, err := url.Parse(got); err != nil {
		t.Errorf("built URL does not parse: %v", err)
	}
}

func TestSearch(t *testing.T) {
	got := Search(Point{Lat: 37.5512, Lng: 126.9882})
	want := "https://www.google.com/maps/search/?api=1&query=37.5512,126.9882"
	if got != want {
		t.Errorf("Search = %s, want %s", got, want)
	}
}

func TestTruncate(t *testing.T) {
	var many []Point
	for i := 0; i < 14; i++ {
		many = append(many, Point{37.5, 127.0})
	}
	if got := Truncate(many); len(got) != MaxStops {
		t.Errorf("Truncate returned %d stops, want %d", len(got), MaxStops)
	}
	three := many[:3]
	if got := Truncate(three); len(got) != 3 {
		t.Errorf("Truncate shortened a list under the ceiling")
	}
}
