// Package docs holds the OpenAPI description served under /docs.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
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
        "/api/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "End the session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Message"}}
                }
            }
        },
        "/api/interaction-types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Interaction type filter options",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.Option"}}}
                }
            }
        },
        "/api/students": {
            "get": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "List students",
                "parameters": [
                    {"type": "string", "description": "name, number or email fragment", "name": "q", "in": "query"},
                    {"type": "integer", "description": "page, from 1", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size, at most 100", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Student"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Create a student",
                "parameters": [
                    {"description": "student", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.StudentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}}
                }
            }
        },
        "/api/students/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Delete a student",
                "parameters": [
                    {"type": "string", "description": "student id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}}
                }
            }
        },
        "/api/interactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interactions"],
                "summary": "List interactions",
                "parameters": [
                    {"type": "string", "description": "interaction type; all matches every type", "name": "type", "in": "query"},
                    {"type": "string", "description": "student id", "name": "student_id", "in": "query"},
                    {"type": "integer", "description": "maximum rows", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Interaction"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interactions"],
                "summary": "Log an interaction",
                "parameters": [
                    {"description": "interaction", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.CreateInteractionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.InteractionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}}
                }
            }
        },
        "/api/integrations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["integrations"],
                "summary": "Integration health with resolved icons",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/services.IntegrationStatus"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}}
                }
            }
        },
        "/api/integrations/{id}/check": {
            "post": {
                "produces": ["application/json"],
                "tags": ["integrations"],
                "summary": "Queue a health check for one integration",
                "parameters": [
                    {"type": "string", "description": "integration id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/types.CheckQueuedResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}}
                }
            }
        },
        "/api/admin/flush": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Hard-deletes every student, interaction, integration and staff row.\nIRREVERSIBLE. Requires a token whose role claim is admin.",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete all data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.FlushResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/envelope.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "catalog.Icon": {
            "type": "object",
            "properties": {"label": {"type": "string"}, "name": {"type": "string"}}
        },
        "catalog.Option": {
            "type": "object",
            "properties": {"label": {"type": "string"}, "value": {"type": "string"}}
        },
        "envelope.ErrorBody": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "envelope.Message": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "models.Interaction": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "occurred_at": {"type": "string"},
                "staff_id": {"type": "string"},
                "student_id": {"type": "string"},
                "summary": {"type": "string"},
                "type": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.Student": {
            "type": "object",
            "properties": {
                "advisor_id": {"type": "string"},
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "string"},
                "last_name": {"type": "string"},
                "program": {"type": "string"},
                "student_number": {"type": "string"},
                "updated_at": {"type": "string"},
                "year": {"type": "integer", "maximum": 8, "minimum": 1}
            }
        },
        "services.IntegrationStatus": {
            "type": "object",
            "properties": {
                "icon": {"$ref": "#/definitions/catalog.Icon"},
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "last_checked_at": {"type": "string"},
                "last_error": {"type": "string"},
                "last_probe": {"type": "object"},
                "name": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "types.CheckQueuedResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "task_id": {"type": "string"}}
        },
        "types.CreateInteractionRequest": {
            "type": "object",
            "required": ["student_id", "summary", "type"],
            "properties": {
                "occurred_at": {"type": "string"},
                "staff_id": {"type": "string"},
                "student_id": {"type": "string"},
                "summary": {"type": "string", "maxLength": 4000},
                "type": {"type": "string", "enum": ["meeting", "email", "phone", "note", "referral"]}
            }
        },
        "types.CreateStudentRequest": {
            "type": "object",
            "required": ["first_name", "last_name", "student_number", "year"],
            "properties": {
                "advisor_id": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string", "maxLength": 128},
                "last_name": {"type": "string", "maxLength": 128},
                "program": {"type": "string", "maxLength": 128},
                "student_number": {"type": "string", "maxLength": 32},
                "year": {"type": "integer", "maximum": 8, "minimum": 1}
            }
        },
        "types.FlushResponse": {
            "type": "object",
            "properties": {
                "deleted": {"type": "object", "additionalProperties": {"type": "integer"}},
                "message": {"type": "string"}
            }
        },
        "types.InteractionResponse": {
            "type": "object",
            "properties": {"interaction": {"$ref": "#/definitions/models.Interaction"}, "message": {"type": "string"}}
        },
        "types.StudentResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "student": {"$ref": "#/definitions/models.Student"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Advising Studio API",
	Description:      "Student advising records: students, interactions, staff and integration health.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
