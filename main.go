// Entrypoint for the Seoul map server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"strings"

	"seoulmap/api"
	"seoulmap/app"
	"seoulmap/docs"
	"seoulmap/places"
	"seoulmap/route"
	"seoulmap/session"
)

var EnvFlag = flag.String("env", "dev", "Set the environment")
var ServeFlag = flag.Bool("serve", false, "Run the server")
var AddressFlag = flag.String("address", ":8080", "Address for server")

func main() {
	flag.Parse()

	if !*ServeFlag {
		fmt.Println("--serve not set")
		return
	}

	// render the api markdown
	md := api.Markdown()
	apiDoc := app.Render([]byte(md))
	apiHTML := app.RenderHTML("API", "API documentation", string(apiDoc))

	// load the catalog
	places.Load()

	// start the session sweeper
	session.Load()

	// inject status stats
	app.CatalogSizeFunc = func() int { return len(places.Catalog()) }
	app.SessionCountFunc = session.Count
	app.LaunchCountFunc = route.LaunchCount
	app.RecentLaunchesFunc = func() []string {
		var out []string
		for _, e := range route.GetLaunches() {
			out = append(out, fmt.Sprintf("%s %s, %d stops", e.Time.Format("15:04:05"), e.Kind, e.Stops))
		}
		return out
	}

	// serve the map and its sub-routes
	http.HandleFunc("/places", places.Handler)
	http.HandleFunc("/places/", places.Handler)

	// serve the docs
	http.HandleFunc("/docs", docs.Handler)
	http.HandleFunc("/docs/", docs.Handler)

	// serve the status
	http.HandleFunc("/status", app.StatusHandler)

	// serve the api doc
	http.Handle("/api", app.ServeHTML(apiHTML))

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, "/places", 302)
			return
		}
		// static assets
		app.Serve().ServeHTTP(w, r)
	})

	fmt.Println("Starting server on", *AddressFlag)

	if err := http.ListenAndServe(*AddressFlag, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if *EnvFlag == "dev" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
		}

		if v := len(r.URL.Path); v > 1 && strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/places/" && r.URL.Path != "/docs/" {
			r.URL.Path = r.URL.Path[:v-1]
		}

		http.DefaultServeMux.ServeHTTP(w, r)
	})); err != nil {
		fmt.Printf("Server error: %v\n", err)
	}
}
