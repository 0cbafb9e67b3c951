package route

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// The builder assembles Google Maps universal URLs; it never computes a path
// itself. Waypoint ordering is whatever the caller passes in — catalog order
// after filtering — and is deliberately not optimised for distance.

// MaxStops is the directions service's waypoint ceiling.
const MaxStops = 10

const (
	directionsBase = "https://www.google.com/maps/dir/?api=1"
	searchBase     = "https://www.google.com/maps/search/?api=1"
)

var (
	ErrNoPlaces     = errors.New("route: no places to route between")
	ErrTooManyStops = errors.New("route: more than 10 stops")
)

// Point is a latitude/longitude stop on a route.
type Point struct {
	Lat float64
	Lng float64
}

// coord formats a point as "lat,lng" with '.' decimals and the shortest
// representation that round-trips.
func coord(p Point) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// Directions builds a walking directions URL through the given stops in
// order. With an origin override the route starts there and every stop is a
// waypoint; without one the first stop is the implicit origin. The caller
// must truncate to MaxStops before calling.
func Directions(stops []Point, origin *Point) (string, error) {
	if len(stops) == 0 {
		return "", ErrNoPlaces
	}
	if len(stops) > MaxStops {
		return "", ErrTooManyStops
	}

	var from string
	var via []Point
	if origin != nil {
		from = coord(*origin)
		via = stops[:len(stops)-1]
	} else {
		from = coord(stops[0])
		if len(stops) > 1 {
			via = stops[1 : len(stops)-1]
		}
	}
	dest := coord(stops[len(stops)-1])

	var b strings.Builder
	b.WriteString(directionsBase)
	b.WriteString("&origin=" + from)
	b.WriteString("&destination=" + dest)
	if len(via) > 0 {
		pts := make([]string, len(via))
		for i, p := range via {
			pts[i] = coord(p)
		}
		b.WriteString("&waypoints=" + url.QueryEscape(strings.Join(pts, "|")))
	}
	b.WriteString("&travelmode=walking")
	return b.String(), nil
}

// Search builds a single-place lookup URL. Origin is always omitted so the
// maps app infers the user's current location.
func Search(p Point) string {
	return searchBase + "&query=" + coord(p)
}

// Truncate clips a stop list to the waypoint ceiling.
func Truncate(stops []Point) []Point {
	if len(stops) > MaxStops {
		return stops[:MaxStops]
	}
	return stops
}
