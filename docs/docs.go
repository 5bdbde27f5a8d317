// Package docs registers the OpenAPI description served under /swagger.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/v1/couriers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["couriers"],
                "summary": "List couriers and their services",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.courierListResponse"}}}
            }
        },
        "/v1/couriers/{key}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["couriers"],
                "summary": "Get one courier",
                "parameters": [{"type": "string", "description": "Courier key (e.g. royal-mail)", "name": "key", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.courierResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/couriers/{key}/tracking-numbers": {
            "post": {
                "produces": ["application/json"],
                "tags": ["couriers"],
                "summary": "Issue a synthetic tracking number",
                "parameters": [{"type": "string", "description": "Courier key", "name": "key", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.trackingResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/labels": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["labels"],
                "summary": "Build a label document",
                "parameters": [{"description": "Shipment fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.shipmentFields"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.labelResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/labels/batch": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["labels"],
                "summary": "Build a batch of label documents",
                "parameters": [{"description": "Array of shipment fields", "name": "body", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.shipmentFields"}}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.batchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/labels/export": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["image/png", "application/pdf"],
                "tags": ["labels"],
                "summary": "Build and export a label as PNG or PDF",
                "parameters": [
                    {"type": "string", "description": "png (default) or pdf", "name": "format", "in": "query"},
                    {"description": "Shipment fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.shipmentFields"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/templates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "List template names",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.templateListResponse"}}}
            }
        },
        "/v1/templates/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Load a template",
                "parameters": [{"type": "string", "description": "Template name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.templateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Save a template",
                "parameters": [
                    {"type": "string", "description": "Template name", "name": "name", "in": "path", "required": true},
                    {"description": "Fields to store", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.shipmentFields"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.templateResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["templates"],
                "summary": "Delete a template",
                "parameters": [{"type": "string", "description": "Template name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/templates/{name}/labels": {
            "post": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Build a label from a template",
                "parameters": [{"type": "string", "description": "Template name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.labelResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.shipmentFields": {
            "type": "object",
            "properties": {
                "courier": {"type": "string"},
                "service": {"type": "string"},
                "sender_name": {"type": "string"},
                "sender_addr1": {"type": "string"},
                "sender_addr2": {"type": "string"},
                "sender_city": {"type": "string"},
                "sender_postcode": {"type": "string"},
                "sender_phone": {"type": "string"},
                "recipient_name": {"type": "string"},
                "recipient_addr1": {"type": "string"},
                "recipient_addr2": {"type": "string"},
                "recipient_city": {"type": "string"},
                "recipient_postcode": {"type": "string"},
                "recipient_phone": {"type": "string"},
                "weight": {"type": "string"},
                "reference": {"type": "string"},
                "instructions": {"type": "string"},
                "tracking": {"type": "string"},
                "signature_required": {"type": "boolean"},
                "parcel_type": {"type": "string"},
                "postage": {"type": "string"},
                "post_by_date": {"type": "string"},
                "printed_from": {"type": "string"},
                "seller_type": {"type": "string"},
                "sort_code": {"type": "string"},
                "routing_code": {"type": "string"}
            }
        },
        "handler.labelResponse": {
            "type": "object",
            "properties": {
                "label": {"type": "object"},
                "generated_tracking": {"type": "boolean"},
                "degradations": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.batchResponse": {
            "type": "object",
            "properties": {
                "succeeded": {"type": "integer"},
                "failed": {"type": "integer"},
                "results": {"type": "array", "items": {"type": "object"}}
            }
        },
        "handler.templateResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "fields": {"$ref": "#/definitions/handler.shipmentFields"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.templateListResponse": {
            "type": "object",
            "properties": {
                "templates": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.courierResponse": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "name": {"type": "string"},
                "tracking_prefix": {"type": "string"},
                "default_service": {"type": "string"},
                "services": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.courierListResponse": {
            "type": "object",
            "properties": {
                "couriers": {"type": "array", "items": {"$ref": "#/definitions/handler.courierResponse"}}
            }
        },
        "handler.trackingResponse": {
            "type": "object",
            "properties": {
                "courier": {"type": "string"},
                "tracking": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	Title:            "Label Service API",
	Description:      "Mock multi-courier shipping label generation: courier catalog, barcode payload encoding, label documents, templates and PNG/PDF export.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
