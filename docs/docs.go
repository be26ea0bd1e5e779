// Package docs holds the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/spots": {
            "get": {
                "summary": "Resolve candidate spots for a region and genre",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "region", "in": "query", "required": true},
                    {"type": "string", "name": "genre", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "spots with a source tag (cache|api|mock)"},
                    "400": {"description": "missing region or genre"},
                    "500": {"description": "provider or configuration failure, empty spot list"}
                }
            }
        },
        "/geocode": {
            "get": {
                "summary": "Raw geocoding provider passthrough",
                "parameters": [
                    {"type": "string", "name": "address", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "raw provider JSON"}}
            }
        },
        "/places/search": {
            "get": {
                "summary": "Raw place-search provider passthrough",
                "parameters": [
                    {"type": "string", "name": "query", "in": "query", "required": true},
                    {"type": "string", "name": "location", "in": "query", "description": "lat,lng"},
                    {"type": "integer", "name": "radius", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"}
                ],
                "responses": {"200": {"description": "raw provider JSON"}}
            }
        },
        "/selections": {
            "post": {
                "summary": "Open a draft selection over a candidate list",
                "responses": {"201": {"description": "created draft"}}
            }
        },
        "/selections/{id}": {
            "get": {
                "summary": "Fetch a draft selection",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "draft"},
                    "404": {"description": "unknown or expired draft"}
                }
            }
        },
        "/selections/{id}/toggle": {
            "post": {
                "summary": "Toggle one candidate in or out of the draft",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "updated draft"}}
            }
        },
        "/selections/{id}/reorder": {
            "post": {
                "summary": "Move one selected spot to a new position",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "updated draft"}}
            }
        },
        "/selections/{id}/submit": {
            "post": {
                "summary": "Commit a draft as a rally (3-5 stops)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "created rally"},
                    "400": {"description": "selection outside the 3-5 window"}
                }
            }
        },
        "/tiers/group": {
            "post": {
                "summary": "Group rated stops into S/A/B tiers",
                "responses": {"200": {"description": "tier board"}}
            }
        },
        "/tiers/reorder": {
            "post": {
                "summary": "Apply one drag operation to a tier board",
                "responses": {"200": {"description": "next tier board state"}}
            }
        },
        "/rallies/{id}/board": {
            "get": {
                "summary": "Public share view of a rated rally",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "rally with tier board"},
                    "404": {"description": "unknown rally"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Spot Rally Service API",
	Description:      "Candidate spot discovery with a persistent search cache, draft rally selection, and S/A/B tier classification of rated stops.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
