package places

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/mrz1836/go-sanitize"

	"seoulmap/app"
	"seoulmap/lang"
	"seoulmap/route"
	"seoulmap/session"
	"seoulmap/viewport"
)

// renderPlacesPage renders the main map page
func renderPlacesPage(s *session.State, filtered []*Place, notice string) string {
	code := s.Lang()
	query, category := s.Filter()

	var b strings.Builder
	b.WriteString(`<div class="places-page">`)

	// Header: title, subtitle, action row
	b.WriteString(fmt.Sprintf(`<h1>%s</h1><p class="subtitle">%s</p>`,
		html.EscapeString(lang.T(code, "title")),
		html.EscapeString(lang.T(code, "subtitle"))))

	b.WriteString(`<div class="actions">`)
	b.WriteString(fmt.Sprintf(`<a href="/places?lang=%s" class="btn" title="%s">%s</a>`,
		lang.Toggle(code), html.EscapeString(lang.T(code, "lang_label")),
		strings.ToUpper(lang.Toggle(code))))
	b.WriteString(fmt.Sprintf(`<a href="/places/route" target="_blank" rel="noopener" class="btn" title="%s">%s</a>`,
		html.EscapeString(lang.T(code, "route_hint")),
		html.EscapeString(lang.T(code, "build_route"))))
	b.WriteString(fmt.Sprintf(`<button class="btn" onclick="locateMe()">%s</button>`,
		html.EscapeString(lang.T(code, "near_me"))))
	if len(filtered) > 0 {
		b.WriteString(fmt.Sprintf(`<a href="/places/route/qr.png" target="_blank" rel="noopener" class="btn" title="%s">QR</a>`,
			html.EscapeString(lang.T(code, "qr_hint"))))
	}
	b.WriteString(`</div>`)

	if msg := noticeText(code, notice); msg != "" {
		b.WriteString(`<p class="notice">` + html.EscapeString(msg) + `</p>`)
	}
	b.WriteString(`<p id="locate-status" class="text-muted" style="display:none;"></p>`)

	// Search + category chips. The query is matched raw but echoed sanitised.
	echo := sanitize.SingleLine(sanitize.XSS(query))
	b.WriteString(app.SearchBar("/places", lang.T(code, "search"), echo, map[string]string{"cat": category}))
	b.WriteString(renderCategoryChips(code, category))

	// Two-column layout: list + map
	b.WriteString(`<div class="places-layout">`)

	b.WriteString(`<div class="places-list">`)
	if len(filtered) == 0 {
		b.WriteString(app.Empty(lang.T(code, "empty")))
	} else {
		b.WriteString(`<div class="card-list">`)
		for _, p := range filtered {
			b.WriteString(renderPlaceCard(code, p, p.ID == s.Selected()))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="places-map">`)
	b.WriteString(`<div id="map"></div>`)
	if sel := Get(s.Selected()); sel != nil {
		b.WriteString(renderDetail(code, sel))
	}
	b.WriteString(`</div>`)

	b.WriteString(`</div>`) // places-layout

	b.WriteString(renderMapScript(s, filtered))
	b.WriteString(`</div>`)
	return b.String()
}

func noticeText(code, notice string) string {
	if notice == "empty_route" {
		return lang.T(code, "route_no_places")
	}
	return ""
}

// renderCategoryChips renders the closed category set as filter chips
func renderCategoryChips(code, active string) string {
	var items [][2]string
	for _, key := range Categories() {
		items = append(items, [2]string{"/places?cat=" + key, lang.Category(code, key)})
	}
	return app.Chips(items, "/places?cat="+active)
}

// renderPlaceCard renders a single place in the list column
func renderPlaceCard(code string, p *Place, selected bool) string {
	var b strings.Builder
	b.WriteString(app.Title(p.Name[code], "/places/select?id="+p.ID))
	b.WriteString(fmt.Sprintf(` <span class="tag">%s</span> <span class="tag">%s</span>`,
		html.EscapeString(lang.Category(code, p.Category)),
		html.EscapeString(lang.T(code, "source_tag"))))
	b.WriteString(app.Meta(html.EscapeString(p.Address) + " &middot; " + fmtCoord(p.Lat) + ", " + fmtCoord(p.Lng)))
	b.WriteString(app.Desc(p.Summary[code]))
	b.WriteString(app.Meta(fmt.Sprintf(`<a href="/places/select?id=%s">%s</a> &middot; <a href="%s" target="_blank" rel="noopener">%s</a>`,
		p.ID, html.EscapeString(lang.T(code, "details")),
		searchURL(p), html.EscapeString(lang.T(code, "directions")))))

	if selected {
		return app.CardDivClass("selected", b.String())
	}
	return app.CardDiv(b.String())
}

// renderDetail renders the detail drawer for the current selection
func renderDetail(code string, p *Place) string {
	var b strings.Builder
	b.WriteString(app.Title(p.Name[code], ""))
	b.WriteString(fmt.Sprintf(` <span class="tag">%s</span>`,
		html.EscapeString(lang.T(code, "source_tag"))))
	b.WriteString(app.Meta(html.EscapeString(p.Address)))
	b.WriteString(app.Desc(p.Summary[code]))
	b.WriteString(app.Meta(fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a> &middot; <a href="/places/select">&#10005;</a>`,
		searchURL(p), html.EscapeString(lang.T(code, "directions")))))
	return app.CardDivClass("detail", b.String())
}

// searchURL is the single-place directions link for a place.
func searchURL(p *Place) string {
	return route.Search(route.Point{Lat: p.Lat, Lng: p.Lng})
}

// placePopupHTML builds an HTML string for a Leaflet map popup for p.
func placePopupHTML(code string, p *Place) string {
	popup := "<b>" + html.EscapeString(p.Name[code]) + "</b>"
	popup += "<br>" + html.EscapeString(p.Summary[code])
	popup += fmt.Sprintf(`<br><a href="%s" target="_blank" rel="noopener">%s</a>`,
		searchURL(p), html.EscapeString(lang.T(code, "directions")))
	return popup
}

// markerJS is the marker definition passed to the map script
type markerJS struct {
	ID    string  `json:"id"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Popup string  `json:"popup"`
}

// renderMapScript generates the Leaflet map JavaScript: markers for the
// filtered places, a websocket feed for fly-to animations, and the
// geolocation exchange for the locate button.
func renderMapScript(s *session.State, filtered []*Place) string {
	code := s.Lang()

	markers := make([]markerJS, len(filtered))
	for i, p := range filtered {
		markers[i] = markerJS{ID: p.ID, Lat: p.Lat, Lng: p.Lng, Popup: placePopupHTML(code, p)}
	}
	markerData, _ := json.Marshal(markers)

	u, ok := s.Viewport.Current()
	if !ok {
		u = viewport.Update{Lat: viewport.DefaultLat, Lng: viewport.DefaultLng, Zoom: viewport.DefaultZoom}
	}

	return fmt.Sprintf(`<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" integrity="sha256-p4NxAoJBhIIN+hmNHrzRCf9tD/miZyoHS5obTRR9BMY=" crossorigin="">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js" integrity="sha256-20nQCchB9co0qIjJZRGuk2/Z9VM+kNiyxNV/XN/WPeE=" crossorigin=""></script>
<script>
(function() {
  var map = L.map('map').setView([%f,%f],%d);
  L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
    maxZoom: 19,
    attribution: '&copy; <a href="http://www.openstreetmap.org/copyright">OpenStreetMap</a>'
  }).addTo(map);
  window._map = map;

  var markers = %s;
  markers.forEach(function(m) {
    var marker = L.marker([m.lat, m.lng]).addTo(map).bindPopup(m.popup);
    marker.on('click', function() {
      fetch('/places/select?id=' + encodeURIComponent(m.id), {headers: {'Accept': 'application/json'}});
    });
  });

  // Viewport feed: the server publishes fly-to commands; the map animates.
  function subscribe() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(proto + location.host + '/places/live');
    ws.onmessage = function(ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === 'flyto') {
        map.flyTo([msg.lat, msg.lng], msg.zoom, {duration: msg.duration_ms / 1000});
      }
    };
    ws.onclose = function() { setTimeout(subscribe, 2000); };
  }
  subscribe();
})();

function locateStatus(text) {
  var el = document.getElementById('locate-status');
  el.style.display = text ? '' : 'none';
  el.textContent = text;
}

function locateMe() {
  locateStatus(%s);
  fetch('/places/locate', {headers: {'Accept': 'application/json'}})
    .then(function(r) { return r.json(); })
    .then(function(req) {
      if (!navigator.geolocation) {
        return report(req.id, null, 'unsupported');
      }
      navigator.geolocation.getCurrentPosition(
        function(pos) { report(req.id, {lat: pos.coords.latitude, lng: pos.coords.longitude}, null); },
        function(err) {
          var reason = 'unknown';
          if (err.code === 1) reason = 'denied';
          if (err.code === 3) reason = 'timeout';
          report(req.id, null, reason);
        },
        {enableHighAccuracy: true, timeout: req.timeout_ms}
      );
    });
}

function report(id, fix, reason) {
  var body = fix ? {id: id, lat: fix.lat, lng: fix.lng} : {id: id, error: reason};
  fetch('/places/locate', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(body)
  }).then(function(r) { return r.json(); }).then(function(res) {
    if (res.ok) {
      locateStatus('');
      if (fix && window._map) {
        L.marker([fix.lat, fix.lng]).addTo(window._map);
      }
    } else {
      locateStatus(%s);
    }
  });
}
</script>`,
		u.Lat, u.Lng, u.Zoom,
		markerData,
		jsonStr(lang.T(code, "locating")),
		jsonStr(lang.T(code, "locate_failed")))
}

// jsonStr returns a JSON-encoded string for use in JavaScript
func jsonStr(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
