// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer access token, \"Bearer \u003ctoken\u003e\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Current user with owned itineraries",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.ProfileResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            },
            "post": {
                "tags": ["users"],
                "summary": "Register a user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/users.CreateUserSchema"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/users.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/auth.LoginSchema"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tokens.TokenPair"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        },
        "/users/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Revoke a refresh token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/auth.TokenRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        },
        "/users/refresh-token": {
            "post": {
                "tags": ["auth"],
                "summary": "Redeem a refresh token for a new token pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/auth.TokenRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tokens.TokenPair"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        },
        "/protected": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Echo the authenticated identity",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.ProtectedResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        },
        "/itineraries": {
            "get": {
                "tags": ["itineraries"],
                "summary": "List itineraries",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Case-insensitive name filter", "name": "name", "in": "query"},
                    {"type": "string", "description": "Owner id", "name": "user_id", "in": "query"},
                    {"type": "boolean", "description": "Only id, name, cover and popular", "name": "simplified", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/itineraries.Itinerary"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["itineraries"],
                "summary": "Create an itinerary owned by the caller",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/itineraries.ItinerarySchema"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/itineraries.Itinerary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        },
        "/itineraries/{id}": {
            "get": {
                "tags": ["itineraries"],
                "summary": "Itinerary with media, details and optional add-ons",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/itineraries.Itinerary"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            },
            "patch": {
                "tags": ["itineraries"],
                "summary": "Update an itinerary",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/itineraries.UpdateItinerarySchema"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/itineraries.Itinerary"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            },
            "delete": {
                "tags": ["itineraries"],
                "summary": "Delete an itinerary with its details, optional add-ons and media",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        },
        "/itineraries/{id}/details": {
            "get": {
                "tags": ["details"],
                "summary": "Details of an itinerary",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/itineraries.Details"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        },
        "/itineraries/details": {
            "post": {
                "tags": ["details"],
                "summary": "Add details to an itinerary",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/itineraries.DetailsSchema"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/itineraries.Details"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/itineraries/details/{id}": {
            "patch": {
                "tags": ["details"],
                "summary": "Update the details of an itinerary",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Itinerary id", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/itineraries.UpdateDetailsSchema"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/itineraries.Details"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            },
            "delete": {
                "tags": ["details"],
                "summary": "Delete the details of an itinerary",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Itinerary id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        },
        "/itineraries/details/{id}/optional": {
            "get": {
                "tags": ["optional"],
                "summary": "Optional add-ons of a details record",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Details id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/itineraries.Optional"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        },
        "/itineraries/details/optional": {
            "post": {
                "tags": ["optional"],
                "summary": "Add an optional add-on to a details record",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/itineraries.OptionalSchema"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/itineraries.Optional"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/itineraries/details/optional/{id}": {
            "patch": {
                "tags": ["optional"],
                "summary": "Update an optional add-on",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/itineraries.UpdateOptionalSchema"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/itineraries.Optional"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            },
            "delete": {
                "tags": ["optional"],
                "summary": "Delete an optional add-on",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        },
        "/itineraries/{id}/media": {
            "get": {
                "tags": ["media"],
                "summary": "Media of an itinerary",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/itineraries.Media"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        },
        "/itineraries/media": {
            "post": {
                "tags": ["media"],
                "summary": "Attach media to an itinerary",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/itineraries.MediaSchema"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/itineraries.Media"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/itineraries/media/{id}": {
            "patch": {
                "tags": ["media"],
                "summary": "Update a media entry",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/itineraries.UpdateMediaSchema"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/itineraries.Media"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            },
            "delete": {
                "tags": ["media"],
                "summary": "Delete a media entry",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "response.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "users.CreateUserSchema": {
            "type": "object",
            "required": ["fullname", "email", "password", "role", "phone"],
            "properties": {
                "fullname": {"type": "string", "minLength": 3},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "string", "enum": ["admin", "user"]},
                "phone": {"type": "string"}
            }
        },
        "users.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "fullname": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "phone": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "users.ProfileResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "fullname": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "phone": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "itineraries": {"type": "array", "items": {"$ref": "#/definitions/users.OwnedItinerary"}}
            }
        },
        "users.OwnedItinerary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "cover": {"type": "string"},
                "popular": {"type": "boolean"},
                "user_id": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "auth.LoginSchema": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "auth.TokenRequest": {
            "type": "object",
            "properties": {"refreshToken": {"type": "string"}}
        },
        "auth.ProtectedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "user": {
                    "type": "object",
                    "properties": {"userId": {"type": "string"}, "email": {"type": "string"}}
                }
            }
        },
        "tokens.TokenPair": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"},
                "refreshToken": {"type": "string"}
            }
        },
        "itineraries.SimplifiedItinerary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "cover": {"type": "string"},
                "popular": {"type": "boolean"}
            }
        },
        "itineraries.Itinerary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "cover": {"type": "string"},
                "popular": {"type": "boolean"},
                "user_id": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "media": {"type": "array", "items": {"$ref": "#/definitions/itineraries.Media"}},
                "details": {"$ref": "#/definitions/itineraries.Details"}
            }
        },
        "itineraries.Additional": {
            "type": "object",
            "properties": {
                "security": {"type": "string"},
                "accessibility": {"type": "string"},
                "recommendations": {"type": "string"}
            }
        },
        "itineraries.Details": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "itinerary_id": {"type": "string"},
                "description": {"type": "string"},
                "tour": {"type": "string"},
                "alert": {"type": "string"},
                "duration": {"type": "number"},
                "included": {"type": "string"},
                "timetable": {"type": "string"},
                "notIncluded": {"type": "string"},
                "meetingPoint": {"type": "string"},
                "costPerPerson": {"type": "number"},
                "additional": {"$ref": "#/definitions/itineraries.Additional"},
                "optional": {"type": "array", "items": {"$ref": "#/definitions/itineraries.Optional"}}
            }
        },
        "itineraries.Optional": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "detail_id": {"type": "string"},
                "title": {"type": "string"},
                "price": {"type": "number"},
                "duration": {"type": "number"},
                "description": {"type": "string"},
                "observations": {"type": "string"}
            }
        },
        "itineraries.Media": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "url": {"type": "string"},
                "itinerary_id": {"type": "string"}
            }
        },
        "itineraries.ItinerarySchema": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "minLength": 3},
                "cover": {"type": "string"},
                "popular": {"type": "boolean"}
            }
        },
        "itineraries.UpdateItinerarySchema": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "minLength": 3},
                "cover": {"type": "string"},
                "popular": {"type": "boolean"}
            }
        },
        "itineraries.DetailsSchema": {
            "type": "object",
            "required": ["itinerary_id", "description"],
            "properties": {
                "itinerary_id": {"type": "string"},
                "description": {"type": "string", "minLength": 3},
                "tour": {"type": "string"},
                "alert": {"type": "string"},
                "duration": {"type": "number"},
                "included": {"type": "string"},
                "timetable": {"type": "string"},
                "notIncluded": {"type": "string"},
                "meetingPoint": {"type": "string"},
                "costPerPerson": {"type": "number"},
                "additional": {"$ref": "#/definitions/itineraries.Additional"}
            }
        },
        "itineraries.UpdateDetailsSchema": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "minLength": 3},
                "tour": {"type": "string"},
                "alert": {"type": "string"},
                "duration": {"type": "number"},
                "included": {"type": "string"},
                "timetable": {"type": "string"},
                "notIncluded": {"type": "string"},
                "meetingPoint": {"type": "string"},
                "costPerPerson": {"type": "number"},
                "additional": {"$ref": "#/definitions/itineraries.Additional"}
            }
        },
        "itineraries.OptionalSchema": {
            "type": "object",
            "required": ["detail_id", "title"],
            "properties": {
                "detail_id": {"type": "string"},
                "title": {"type": "string", "minLength": 3},
                "price": {"type": "number"},
                "duration": {"type": "number"},
                "description": {"type": "string"},
                "observations": {"type": "string"}
            }
        },
        "itineraries.UpdateOptionalSchema": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "minLength": 3},
                "price": {"type": "number"},
                "duration": {"type": "number"},
                "description": {"type": "string"},
                "observations": {"type": "string"}
            }
        },
        "itineraries.MediaSchema": {
            "type": "object",
            "required": ["url", "itinerary_id"],
            "properties": {
                "url": {"type": "string"},
                "itinerary_id": {"type": "string"}
            }
        },
        "itineraries.UpdateMediaSchema": {
            "type": "object",
            "properties": {"url": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Triply API",
	Description:      "Travel itinerary catalog with token based sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
