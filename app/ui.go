package app

import (
	"html"
	"strings"
)

// UI layout helpers for consistent rendering.
// Use these wrappers + seoulmap.css classes.

// SearchBar renders a search input with search button. Extra hidden fields
// carry state (e.g. the active category) through the form submit.
func SearchBar(action, placeholder, query string, hidden map[string]string) string {
	var b strings.Builder
	b.WriteString(`<form class="search-bar" action="`)
	b.WriteString(action)
	b.WriteString(`" method="GET"><input type="text" name="q" placeholder="`)
	b.WriteString(html.EscapeString(placeholder))
	b.WriteString(`" value="`)
	b.WriteString(html.EscapeString(query))
	b.WriteString(`">`)
	for name, value := range hidden {
		b.WriteString(`<input type="hidden" name="`)
		b.WriteString(html.EscapeString(name))
		b.WriteString(`" value="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`">`)
	}
	b.WriteString(`<button type="submit">&#128269;</button></form>`)
	return b.String()
}

// ActionLink renders a primary action link
func ActionLink(href, label string) string {
	return `<a href="` + href + `" class="btn">` + html.EscapeString(label) + `</a>`
}

// List wraps content in a card-list container
func List(content string) string {
	return `<div class="card-list">` + content + `</div>`
}

// Empty renders an empty state message
func Empty(message string) string {
	return `<p class="empty">` + html.EscapeString(message) + `</p>`
}

// CardDiv wraps content in a card container
func CardDiv(content string) string {
	return `<div class="card">` + content + `</div>`
}

// CardDivClass wraps content in a card with additional classes
func CardDivClass(class, content string) string {
	return `<div class="card ` + class + `">` + content + `</div>`
}

// Chips renders a row of filter chips; the active one is highlighted.
func Chips(items [][2]string, activeHref string) string {
	var b strings.Builder
	b.WriteString(`<div class="chips">`)
	for _, item := range items {
		href, label := item[0], item[1]
		class := "chip"
		if href == activeHref {
			class = "chip active"
		}
		b.WriteString(`<a href="` + href + `" class="` + class + `">` + html.EscapeString(label) + `</a>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Title renders a card title with link
func Title(text, href string) string {
	if href != "" {
		return `<a href="` + href + `" class="card-title">` + html.EscapeString(text) + `</a>`
	}
	return `<span class="card-title">` + html.EscapeString(text) + `</span>`
}

// Meta renders metadata text
func Meta(content string) string {
	return `<div class="card-meta">` + content + `</div>`
}

// Desc renders description text
func Desc(text string) string {
	return `<p class="card-desc">` + html.EscapeString(text) + `</p>`
}
