package route

import (
	"sync"
	"time"
)

const launchLogMaxEntries = 200

// LaunchEntry records a single external navigation launch.
type LaunchEntry struct {
	Time  time.Time
	Kind  string // "directions" or "search"
	URL   string
	Stops int
}

var (
	launchMu      sync.Mutex
	launchEntries []*LaunchEntry
)

// RecordLaunch appends a navigation launch to the in-memory log. When the log
// exceeds launchLogMaxEntries the oldest entry is dropped.
func RecordLaunch(kind, url string, stops int) {
	entry := &LaunchEntry{
		Time:  time.Now(),
		Kind:  kind,
		URL:   url,
		Stops: stops,
	}
	launchMu.Lock()
	launchEntries = append(launchEntries, entry)
	if len(launchEntries) > launchLogMaxEntries {
		launchEntries = launchEntries[len(launchEntries)-launchLogMaxEntries:]
	}
	launchMu.Unlock()
}

// GetLaunches returns a copy of the launch log in reverse-chronological order.
func GetLaunches() []*LaunchEntry {
	launchMu.Lock()
	defer launchMu.Unlock()
	result := make([]*LaunchEntry, len(launchEntries))
	for i, e := range launchEntries {
		result[len(launchEntries)-1-i] = e
	}
	return result
}

// LaunchCount returns the number of recorded launches.
func LaunchCount() int {
	launchMu.Lock()
	defer launchMu.Unlock()
	return len(launchEntries)
}
