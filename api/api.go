package api

import (
	"fmt"
)

type Endpoint struct {
	Name        string
	Path        string
	Method      string
	Params      []*Param
	Response    []*Value
	Description string
}

type Param struct {
	Name        string
	Value       string
	Description string
}

type Value struct {
	Type   string
	Params []*Param
}

var Endpoints = []*Endpoint{{
	Name:        "Places",
	Path:        "/places",
	Method:      "GET",
	Description: "List places matching the current filter. Send Accept: application/json for data; otherwise the map page is rendered.",
	Params: []*Param{
		{
			Name:        "q",
			Value:       "string",
			Description: "Free-text query, matched case-insensitively against names and summaries in both languages",
		},
		{
			Name:        "cat",
			Value:       "string",
			Description: "Category key from the closed set, or 'all'",
		},
		{
			Name:        "lang",
			Value:       "string",
			Description: "UI language, 'ko' or 'en'",
		},
	},
	Response: []*Value{
		{
			Type: "JSON",
			Params: []*Param{
				{
					Name:        "places",
					Value:       "array",
					Description: "Matching places in catalog order",
				},
				{
					Name:        "count",
					Value:       "number",
					Description: "Number of matches",
				},
			},
		},
	},
}, {
	Name:        "Select Place",
	Path:        "/places/select?id={id}",
	Method:      "GET",
	Description: "Select a place and center the map on it. Empty id clears the selection.",
	Response: []*Value{
		{
			Type: "JSON",
			Params: []*Param{
				{
					Name:        "selected",
					Value:       "string",
					Description: "The selected place id",
				},
			},
		},
	},
}, {
	Name:        "Build Route",
	Path:        "/places/route",
	Method:      "GET",
	Description: "Build a walking directions URL through the filtered places (max 10) and redirect to it. Uses the last resolved location as origin when available.",
	Response: []*Value{
		{
			Type: "JSON",
			Params: []*Param{
				{
					Name:        "url",
					Value:       "string",
					Description: "The external directions URL",
				},
				{
					Name:        "stops",
					Value:       "number",
					Description: "Number of places in the route",
				},
			},
		},
	},
}, {
	Name:        "Route QR",
	Path:        "/places/route/qr.png",
	Method:      "GET",
	Description: "The current route URL as a QR code PNG",
	Response: []*Value{
		{
			Type: "PNG",
			Params: []*Param{
				{
					Name:        "image",
					Value:       "binary",
					Description: "QR code image",
				},
			},
		},
	},
}, {
	Name:        "Begin Locate",
	Path:        "/places/locate",
	Method:      "GET",
	Description: "Begin a single-shot location request. Supersedes any unresolved prior request.",
	Response: []*Value{
		{
			Type: "JSON",
			Params: []*Param{
				{
					Name:        "id",
					Value:       "string",
					Description: "Request correlation id",
				},
				{
					Name:        "timeout_ms",
					Value:       "number",
					Description: "Bounded wait before the request fails",
				},
			},
		},
	},
}, {
	Name:        "Report Locate",
	Path:        "/places/locate",
	Method:      "POST",
	Description: "Deliver the device position (or a failure reason) for a pending request. Stale ids are rejected with 409.",
	Params: []*Param{
		{
			Name:        "id",
			Value:       "string",
			Description: "The correlation id from Begin Locate",
		},
		{
			Name:        "lat",
			Value:       "number",
			Description: "Latitude, when resolved",
		},
		{
			Name:        "lng",
			Value:       "number",
			Description: "Longitude, when resolved",
		},
		{
			Name:        "error",
			Value:       "string",
			Description: "Failure reason: unsupported, denied, timeout or unknown",
		},
	},
	Response: []*Value{
		{
			Type: "JSON",
			Params: []*Param{
				{
					Name:        "ok",
					Value:       "boolean",
					Description: "Whether the position was applied",
				},
			},
		},
	},
}, {
	Name:        "Live Viewport",
	Path:        "/places/live",
	Method:      "GET",
	Description: "WebSocket feed of fly-to commands for the session's map viewport",
	Response: []*Value{
		{
			Type: "JSON",
			Params: []*Param{
				{
					Name:        "type",
					Value:       "string",
					Description: "Always 'flyto'",
				},
				{
					Name:        "lat",
					Value:       "number",
					Description: "New center latitude",
				},
				{
					Name:        "lng",
					Value:       "number",
					Description: "New center longitude",
				},
				{
					Name:        "zoom",
					Value:       "number",
					Description: "New zoom level",
				},
				{
					Name:        "duration_ms",
					Value:       "number",
					Description: "Animation duration",
				},
			},
		},
	},
}, {
	Name:        "Status",
	Path:        "/status",
	Method:      "GET",
	Description: "Server health, catalog and session stats",
	Response: []*Value{
		{
			Type: "JSON",
			Params: []*Param{
				{
					Name:        "healthy",
					Value:       "boolean",
					Description: "Overall health",
				},
				{
					Name:        "services",
					Value:       "array",
					Description: "Individual checks",
				},
			},
		},
	},
}}

// Register an endpoint
func Register(ep *Endpoint) {
	Endpoints = append(Endpoints, ep)
}

// Markdown API document
func Markdown() string {
	var data string

	data += "# API Documentation\n\n"
	data += "The API is the same set of paths the map page uses. No authentication\n"
	data += "is required; per-browser UI state lives in a `session` cookie that is\n"
	data += "set on first contact and forgotten when the server stops.\n\n"
	data += "Send `Accept: application/json` to get data instead of rendered pages.\n\n"
	data += "---\n\n"
	data += "## Endpoints\n\n"

	for _, endpoint := range Endpoints {
		data += "## " + endpoint.Name
		data += fmt.Sprintln()
		data += fmt.Sprintln()
		data += fmt.Sprintln(endpoint.Description)
		data += fmt.Sprintln()
		data += fmt.Sprintf("```%s %s```", endpoint.Method, endpoint.Path)
		data += fmt.Sprintln()

		if endpoint.Params != nil {
			data += fmt.Sprintln("#### Request")
			data += fmt.Sprintln()
			data += "| Field | Type | Description |"
			data += fmt.Sprintln()
			data += "| ----- | ---- | ----------- |"
			data += fmt.Sprintln()

			for _, param := range endpoint.Params {
				data += fmt.Sprintf("|	%s	|	%s	|	%s	|", param.Name, param.Value, param.Description)
				data += fmt.Sprintln()
			}
			data += fmt.Sprintln()
			data += fmt.Sprintln("\\")
			data += fmt.Sprintln()
		}

		if endpoint.Response != nil {
			data += fmt.Sprintln("#### Response")
			data += fmt.Sprintln()
			for _, resp := range endpoint.Response {
				data += fmt.Sprintln()
				data += fmt.Sprintf("Format: %s", resp.Type)
				data += fmt.Sprintln()
				data += "| Field | Type | Description |"
				data += fmt.Sprintln()
				data += "| ----- | ---- | ----------- |"
				data += fmt.Sprintln()
				for _, param := range resp.Params {
					data += fmt.Sprintf("|	%s	|	%s	|	%s	|", param.Name, param.Value, param.Description)
					data += fmt.Sprintln()
				}
			}

			data += fmt.Sprintln()
			data += fmt.Sprintln("\\")
			data += fmt.Sprintln()
		}

		data += fmt.Sprintln()
		data += fmt.Sprintln("\\")
		data += fmt.Sprintln("\\")
		data += fmt.Sprintln()
	}

	return data
}
