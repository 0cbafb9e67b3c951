package docs

import (
	"embed"
	"fmt"
	"net/http"
	"strings"

	"seoulmap/app"
)

//go:embed *.md
var docsFS embed.FS

// Document represents a documentation page
type Document struct {
	Slug        string
	Filename    string
	Title       string
	Description string
}

var catalog = []Document{
	{Slug: "about", Filename: "ABOUT.md", Title: "About", Description: "What this map is and where the places come from"},
	{Slug: "routing", Filename: "ROUTING.md", Title: "Routing", Description: "How the multi-stop directions link is built"},
	{Slug: "self-hosting", Filename: "SELF_HOSTING.md", Title: "Self-hosting", Description: "Running the map yourself"},
}

// Handler serves the /docs endpoint
func Handler(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/docs")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		renderIndex(w, r)
		return
	}

	var doc *Document
	for _, d := range catalog {
		if d.Slug == path {
			doc = &d
			break
		}
	}
	if doc == nil {
		app.NotFound(w, r)
		return
	}

	content, err := docsFS.ReadFile(doc.Filename)
	if err != nil {
		app.NotFound(w, r)
		return
	}

	html := fmt.Sprintf(`<div class="docs">
<div class="docs-nav"><a href="/docs">&larr; All Docs</a></div>
<div class="docs-content">%s</div>
</div>`, string(app.Render(content)))

	app.Respond(w, r, app.Response{
		Title:       doc.Title,
		Description: doc.Description,
		HTML:        html,
	})
}

// renderIndex shows the documentation index
func renderIndex(w http.ResponseWriter, r *http.Request) {
	var content strings.Builder

	content.WriteString(`<p>Documentation for using and self-hosting the map.</p>`)
	content.WriteString(`<div class="card-list">`)
	for _, doc := range catalog {
		content.WriteString(app.CardDiv(
			app.Title(doc.Title, "/docs/"+doc.Slug) + app.Desc(doc.Description)))
	}
	content.WriteString(`</div>`)

	app.Respond(w, r, app.Response{
		Title:       "Docs",
		Description: "Documentation",
		HTML:        content.String(),
	})
}
