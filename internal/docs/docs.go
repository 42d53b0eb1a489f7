// Package docs holds the Swagger description of the wallet API served at
// /swagger/index.html.
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
        "/accounts": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "List wallet accounts. page and limit select a single page; the total is reported in X-Total-Count.",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List accounts",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Accounts", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Account"}}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/accounts/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get account by ID",
                "parameters": [
                    {"type": "string", "description": "Account ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Account details", "schema": {"$ref": "#/definitions/models.Account"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "List transactions, newest date first. Filters match exactly.",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "string", "description": "Account ID", "name": "accountId", "in": "query"},
                    {"type": "string", "description": "income or expense", "name": "type", "in": "query"},
                    {"type": "string", "description": "Category tag", "name": "category", "in": "query"},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Transactions", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Record an income or expense on an account. The server assigns the id and stamps createdAt when it is missing.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Create a transaction",
                "parameters": [
                    {"description": "Transaction details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Transaction created", "schema": {"$ref": "#/definitions/models.Transaction"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "required": ["accountId", "type", "amount", "description", "category"],
            "properties": {
                "accountId": {"type": "string"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "amount": {"type": "number"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "date": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "models.Account": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "balance": {"type": "number"},
                "currency": {"type": "string"},
                "type": {"type": "string", "enum": ["general", "investment", "expenses"]},
                "createdAt": {"type": "string"}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "accountId": {"type": "string"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "amount": {"type": "number"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "date": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Wallet API",
	Description:      "Reference backend for the wallet data-access layer: accounts and their transactions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
