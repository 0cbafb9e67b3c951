package places

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"seoulmap/app"
	"seoulmap/lang"
	"seoulmap/location"
	"seoulmap/route"
	"seoulmap/session"
	"seoulmap/viewport"
)

// Handler handles /places requests
func Handler(w http.ResponseWriter, r *http.Request) {
	// Handle sub-routes
	switch r.URL.Path {
	case "/places/select":
		handleSelect(w, r)
		return
	case "/places/route":
		handleRoute(w, r)
		return
	case "/places/route/qr.png":
		handleRouteQR(w, r)
		return
	case "/places/locate":
		handleLocate(w, r)
		return
	case "/places/live":
		session.LiveHandler(w, r)
		return
	}

	s := session.Get(w, r)
	applyParams(s, r)
	query, category := s.Filter()
	filtered := Filter(Catalog(), category, query)

	if app.WantsJSON(r) {
		app.RespondJSON(w, map[string]interface{}{
			"places":   filtered,
			"count":    len(filtered),
			"query":    query,
			"category": category,
			"lang":     s.Lang(),
		})
		return
	}

	code := s.Lang()
	app.Respond(w, r, app.Response{
		Title:       lang.T(code, "title"),
		Description: lang.T(code, "subtitle"),
		HTML:        renderPlacesPage(s, filtered, r.URL.Query().Get("notice")),
	})
}

// applyParams folds query parameters into the session's UI state. The free
// text is stored verbatim — matching works on the raw string, and the render
// layer sanitises at the echo point.
func applyParams(s *session.State, r *http.Request) {
	q := r.URL.Query()

	if code := q.Get("lang"); code != "" {
		s.SetLang(code)
	}

	query, category := s.Filter()
	changed := false
	if _, ok := q["q"]; ok {
		query = q.Get("q")
		changed = true
	}
	if cat := q.Get("cat"); cat != "" {
		if ValidCategory(cat) {
			category = cat
		}
		changed = true
	}
	if changed {
		s.SetFilter(query, category)
	}
}

// handleSelect sets (or clears) the selection and centers the viewport on it.
func handleSelect(w http.ResponseWriter, r *http.Request) {
	s := session.Get(w, r)
	id := r.URL.Query().Get("id")

	if id == "" {
		s.Select("")
		if app.WantsJSON(r) {
			app.RespondJSON(w, map[string]interface{}{"selected": ""})
			return
		}
		http.Redirect(w, r, "/places", http.StatusSeeOther)
		return
	}

	p := Get(id)
	if p == nil {
		app.NotFound(w, r)
		return
	}
	s.Select(p.ID)
	s.Viewport.CenterOn(p.Lat, p.Lng, viewport.FocusZoom)

	if app.WantsJSON(r) {
		app.RespondJSON(w, map[string]interface{}{"selected": p.ID})
		return
	}
	http.Redirect(w, r, "/places", http.StatusSeeOther)
}

// handleRoute builds a walking route over the filtered places and redirects
// to the external directions service. Zero filtered places is a no-op.
func handleRoute(w http.ResponseWriter, r *http.Request) {
	s := session.Get(w, r)
	query, category := s.Filter()
	stops := route.Truncate(routePoints(Filter(Catalog(), category, query)))

	var origin *route.Point
	if fix := s.LastFix(); fix != nil {
		origin = &route.Point{Lat: fix.Lat, Lng: fix.Lng}
	}

	u, err := route.Directions(stops, origin)
	if err != nil {
		// No places to route between: stay on the page, no launch.
		if app.WantsJSON(r) {
			app.RespondError(w, http.StatusUnprocessableEntity, lang.T(s.Lang(), "route_no_places"))
			return
		}
		http.Redirect(w, r, "/places?notice=empty_route", http.StatusSeeOther)
		return
	}

	route.RecordLaunch("directions", u, len(stops))
	app.Log("places", "Route launch: %d stops", len(stops))

	if app.WantsJSON(r) {
		app.RespondJSON(w, map[string]interface{}{"url": u, "stops": len(stops)})
		return
	}
	http.Redirect(w, r, u, http.StatusFound)
}

// handleRouteQR serves the current route as a QR code PNG.
func handleRouteQR(w http.ResponseWriter, r *http.Request) {
	s := session.Get(w, r)
	query, category := s.Filter()
	stops := route.Truncate(routePoints(Filter(Catalog(), category, query)))

	var origin *route.Point
	if fix := s.LastFix(); fix != nil {
		origin = &route.Point{Lat: fix.Lat, Lng: fix.Lng}
	}

	u, err := route.Directions(stops, origin)
	if err != nil {
		app.NotFound(w, r)
		return
	}
	png, err := route.QRPNG(u)
	if err != nil {
		app.Log("places", "QR encode error: %v", err)
		app.ServerError(w, r, "QR encoding failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// locateResult is posted by the page once browser geolocation settles.
type locateResult struct {
	ID    string  `json:"id"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Error string  `json:"error"`
}

// handleLocate drives the single-shot location exchange. GET begins a new
// request; POST delivers the browser's result for it.
func handleLocate(w http.ResponseWriter, r *http.Request) {
	s := session.Get(w, r)

	switch r.Method {
	case http.MethodGet:
		req := s.Location.Begin(location.Timeout)
		go watchLocate(s.Location, req)
		app.RespondJSON(w, map[string]interface{}{
			"id":         req.ID,
			"timeout_ms": location.Timeout.Milliseconds(),
		})

	case http.MethodPost:
		var res locateResult
		if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
			app.BadRequest(w, r, "invalid body")
			return
		}
		if res.Error != "" {
			if err := s.Location.Fail(res.ID, res.Error); err != nil {
				app.RespondError(w, http.StatusConflict, err.Error())
				return
			}
			app.RespondJSON(w, map[string]interface{}{"ok": false, "reason": res.Error})
			return
		}
		fix := location.Fix{Lat: res.Lat, Lng: res.Lng}
		if !(Coordinate{Lat: fix.Lat, Lng: fix.Lng}).Valid() {
			app.BadRequest(w, r, "invalid coordinate")
			return
		}
		if err := s.Location.Resolve(res.ID, fix); err != nil {
			// Superseded or expired: discard harmlessly.
			app.RespondError(w, http.StatusConflict, err.Error())
			return
		}
		s.SetFix(fix)
		// Last-writer-wins: applied even if the viewport moved meanwhile.
		s.Viewport.CenterOn(fix.Lat, fix.Lng, viewport.FocusZoom)
		app.RespondJSON(w, map[string]interface{}{"ok": true})

	default:
		app.MethodNotAllowed(w, r)
	}
}

// watchLocate enforces the request deadline server-side. If the page never
// reports back, the wait times out, the request is detached, and a late
// report is rejected as stale. Failures reported by the page surface here
// as typed errors and are logged once.
func watchLocate(p *location.Provider, req *location.Request) {
	_, err := p.Wait(context.Background(), req)
	if err != nil && err != location.ErrStale && err != location.ErrBusy {
		app.Log("places", "Location request failed: %v", err)
	}
}

// routePoints maps places to route stops in order.
func routePoints(ps []*Place) []route.Point {
	pts := make([]route.Point, len(ps))
	for i, p := range ps {
		pts[i] = route.Point{Lat: p.Lat, Lng: p.Lng}
	}
	return pts
}

// fmtCoord renders a coordinate for display.
func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
