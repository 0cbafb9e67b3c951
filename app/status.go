package app

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"
)

var startTime = time.Now()

// Stats funcs are injected by main to avoid import cycles.
var (
	CatalogSizeFunc    func() int
	SessionCountFunc   func() int
	LaunchCountFunc    func() int
	RecentLaunchesFunc func() []string
)

// StatusCheck represents a single status check result
type StatusCheck struct {
	Name    string `json:"name"`
	Status  bool   `json:"status"`
	Details string `json:"details,omitempty"`
}

// MemoryStatus represents memory usage
type MemoryStatus struct {
	Alloc      uint64 `json:"alloc_mb"`
	Sys        uint64 `json:"sys_mb"`
	NumGC      uint32 `json:"num_gc"`
	Goroutines int    `json:"goroutines"`
}

// StatusResponse represents the full status response
type StatusResponse struct {
	Healthy   bool          `json:"healthy"`
	Uptime    string        `json:"uptime"`
	GoVersion string        `json:"go_version"`
	Memory    MemoryStatus  `json:"memory"`
	Services  []StatusCheck `json:"services"`
}

// StatusHandler handles the /status endpoint
func StatusHandler(w http.ResponseWriter, r *http.Request) {
	status := buildStatus()

	// Quick health check endpoint
	if r.URL.Query().Get("quick") == "1" {
		RespondJSON(w, map[string]interface{}{"healthy": status.Healthy})
		return
	}

	if r.URL.Query().Get("format") == "json" || WantsJSON(r) {
		RespondJSON(w, status)
		return
	}

	Respond(w, r, Response{
		Title:       "Status",
		Description: "Server status and health checks",
		HTML:        renderStatusHTML(status),
	})
}

func buildStatus() StatusResponse {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	services := []StatusCheck{}

	if CatalogSizeFunc != nil {
		n := CatalogSizeFunc()
		services = append(services, StatusCheck{
			Name:    "Catalog",
			Status:  n > 0,
			Details: fmt.Sprintf("%d places", n),
		})
	}
	if SessionCountFunc != nil {
		services = append(services, StatusCheck{
			Name:    "Sessions",
			Status:  true,
			Details: fmt.Sprintf("%d live", SessionCountFunc()),
		})
	}
	if LaunchCountFunc != nil {
		services = append(services, StatusCheck{
			Name:    "Route launches",
			Status:  true,
			Details: fmt.Sprintf("%d recorded", LaunchCountFunc()),
		})
	}

	healthy := true
	for _, s := range services {
		if !s.Status {
			healthy = false
		}
	}

	return StatusResponse{
		Healthy:   healthy,
		Uptime:    time.Since(startTime).Round(time.Second).String(),
		GoVersion: runtime.Version(),
		Memory: MemoryStatus{
			Alloc:      m.Alloc / 1024 / 1024,
			Sys:        m.Sys / 1024 / 1024,
			NumGC:      m.NumGC,
			Goroutines: runtime.NumGoroutine(),
		},
		Services: services,
	}
}

func renderStatusHTML(s StatusResponse) string {
	var b strings.Builder

	state := "Healthy"
	if !s.Healthy {
		state = "Degraded"
	}
	b.WriteString(fmt.Sprintf(`<h2>%s</h2>`, state))
	b.WriteString(Meta(fmt.Sprintf("Uptime %s &middot; %s &middot; %d goroutines &middot; %dMB",
		s.Uptime, s.GoVersion, s.Memory.Goroutines, s.Memory.Alloc)))

	b.WriteString(`<div class="card-list">`)
	for _, check := range s.Services {
		mark := "&#10003;"
		if !check.Status {
			mark = "&#10007;"
		}
		b.WriteString(CardDiv(fmt.Sprintf(`%s %s <span class="text-muted">%s</span>`,
			mark, check.Name, check.Details)))
	}
	b.WriteString(`</div>`)

	if RecentLaunchesFunc != nil {
		if lines := RecentLaunchesFunc(); len(lines) > 0 {
			if len(lines) > 10 {
				lines = lines[:10]
			}
			b.WriteString(`<h3>Recent routes</h3><div class="card-list">`)
			for _, line := range lines {
				b.WriteString(CardDiv(line))
			}
			b.WriteString(`</div>`)
		}
	}

	b.WriteString(`<h3>Log</h3><div class="card-list">`)
	entries := GetSysLog()
	if len(entries) > 20 {
		entries = entries[:20]
	}
	for _, e := range entries {
		b.WriteString(CardDiv(fmt.Sprintf(`<span class="text-muted">%s</span> [%s] %s`,
			e.Time.Format("15:04:05"), e.Package, e.Message)))
	}
	b.WriteString(`</div>`)

	return b.String()
}
