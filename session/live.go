package session

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"seoulmap/app"
	"seoulmap/viewport"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// flyTo is pushed to the map page whenever the session viewport changes.
type flyTo struct {
	Type       string  `json:"type"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Zoom       int     `json:"zoom"`
	DurationMS int64   `json:"duration_ms"`
}

func flyToMessage(u viewport.Update) []byte {
	data, _ := json.Marshal(flyTo{
		Type:       "flyto",
		Lat:        u.Lat,
		Lng:        u.Lng,
		Zoom:       u.Zoom,
		DurationMS: viewport.AnimateDuration.Milliseconds(),
	})
	return data
}

// LiveHandler streams viewport updates for the caller's session over a
// websocket. The Leaflet page subscribes and animates each fly-to.
func LiveHandler(w http.ResponseWriter, r *http.Request) {
	s := Lookup(r)
	if s == nil {
		http.Error(w, "no session", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.Log("session", "WebSocket upgrade error: %v", err)
		return
	}

	updates, cancel := s.Viewport.Subscribe()

	// Send the current viewport immediately so a reconnecting page syncs up.
	if u, ok := s.Viewport.Current(); ok {
		conn.WriteMessage(websocket.TextMessage, flyToMessage(u))
	}

	// Reader: drains client pings, detects disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			s.touch()
		}
	}()

	go func() {
		defer func() {
			cancel()
			conn.Close()
		}()
		for {
			select {
			case u := <-updates:
				conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, flyToMessage(u)); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()
}
