// Package docs registers the Swagger document served under /api-docs.
// Keep it in sync with the handler annotations when routes change.
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
        "/": {
            "get": {
                "description": "Get the API version and its main endpoints",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "API information",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/main.WelcomeResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Get liveness, uptime in seconds and memory usage",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/main.HealthResponse"}
                    }
                }
            }
        },
        "/api/transactions": {
            "get": {
                "description": "Get every transaction from the configured data source. Remote sources may return an opaque cursor.",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Page number (validated only)", "name": "page", "in": "query"},
                    {"maximum": 100, "minimum": 1, "type": "integer", "description": "Page size (validated only)", "name": "pageSize", "in": "query"},
                    {"type": "integer", "description": "Alias of pageSize", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Transactions retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/main.SuccessResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/service.ListResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid pagination parameters", "schema": {"$ref": "#/definitions/main.ErrorResponse"}},
                    "500": {"description": "Data source error", "schema": {"$ref": "#/definitions/main.ErrorResponse"}}
                }
            }
        },
        "/api/transactions/count": {
            "get": {
                "description": "Get the number of transactions on a page together with pagination metadata",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Count transactions",
                "parameters": [
                    {"minimum": 1, "type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"maximum": 100, "minimum": 1, "type": "integer", "default": 10, "description": "Page size", "name": "pageSize", "in": "query"},
                    {"type": "integer", "description": "Alias of pageSize", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Transaction count retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/main.SuccessResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/service.CountResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid pagination parameters", "schema": {"$ref": "#/definitions/main.ErrorResponse"}},
                    "500": {"description": "Data source error", "schema": {"$ref": "#/definitions/main.ErrorResponse"}}
                }
            }
        },
        "/api/transactions/mock": {
            "get": {
                "description": "Get one page of the local transaction dataset regardless of the configured data source",
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Page through the local dataset",
                "parameters": [
                    {"minimum": 1, "type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"maximum": 100, "minimum": 1, "type": "integer", "default": 10, "description": "Page size", "name": "pageSize", "in": "query"},
                    {"type": "integer", "description": "Alias of pageSize", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Mock transactions retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/main.SuccessResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/service.PageResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid pagination parameters", "schema": {"$ref": "#/definitions/main.ErrorResponse"}},
                    "500": {"description": "Local dataset unavailable", "schema": {"$ref": "#/definitions/main.ErrorResponse"}}
                }
            }
        },
        "/api/transactions/sum": {
            "get": {
                "description": "Get the two-decimal sum of transactions, optionally filtered by type, with an optional credit/debit breakdown over all transactions",
                "produces": ["application/json"],
                "tags": ["totals"],
                "summary": "Sum transactions",
                "parameters": [
                    {"enum": ["credit", "debit", "all"], "type": "string", "default": "all", "description": "Transaction type", "name": "type", "in": "query"},
                    {"type": "boolean", "default": false, "description": "Include credit/debit breakdown", "name": "includeBreakdown", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Transaction sum calculated successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/main.SuccessResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/aggregate.SumResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid type", "schema": {"$ref": "#/definitions/main.ErrorResponse"}},
                    "500": {"description": "Data source error", "schema": {"$ref": "#/definitions/main.ErrorResponse"}}
                }
            }
        },
        "/api/transactions/stats": {
            "get": {
                "description": "Get totals, counts, average amount and per-type groups, optionally narrowed by type, amount range and date range",
                "produces": ["application/json"],
                "tags": ["totals"],
                "summary": "Transaction statistics",
                "parameters": [
                    {"enum": ["credit", "debit", "all"], "type": "string", "default": "all", "description": "Transaction type", "name": "type", "in": "query"},
                    {"type": "number", "description": "Minimum amount (inclusive)", "name": "minAmount", "in": "query"},
                    {"type": "number", "description": "Maximum amount (inclusive)", "name": "maxAmount", "in": "query"},
                    {"type": "string", "description": "Earliest date, RFC3339 or YYYY-MM-DD (inclusive)", "name": "fromDate", "in": "query"},
                    {"type": "string", "description": "Latest date, RFC3339 or YYYY-MM-DD (inclusive)", "name": "toDate", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Transaction stats calculated successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/main.SuccessResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/aggregate.Stats"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid filters", "schema": {"$ref": "#/definitions/main.ErrorResponse"}},
                    "500": {"description": "Data source error", "schema": {"$ref": "#/definitions/main.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "aggregate.Breakdown": {
            "type": "object",
            "properties": {
                "creditSum": {"type": "number"},
                "debitSum": {"type": "number"},
                "netAmount": {"type": "number"}
            }
        },
        "aggregate.Group": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "sum": {"type": "number"}
            }
        },
        "aggregate.Stats": {
            "type": "object",
            "properties": {
                "average": {"type": "number"},
                "breakdown": {"$ref": "#/definitions/aggregate.Breakdown"},
                "byType": {"type": "object", "additionalProperties": {"$ref": "#/definitions/aggregate.Group"}},
                "count": {"type": "integer"},
                "creditCount": {"type": "integer"},
                "debitCount": {"type": "integer"},
                "total": {"type": "number"}
            }
        },
        "aggregate.SumResult": {
            "type": "object",
            "properties": {
                "breakdown": {"$ref": "#/definitions/aggregate.Breakdown"},
                "currency": {"type": "string"},
                "totalSum": {"type": "number"},
                "transactionCount": {"type": "integer"}
            }
        },
        "apperror.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"},
                "value": {}
            }
        },
        "main.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "method": {"type": "string"},
                "statusCode": {"type": "integer"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"},
                "url": {"type": "string"},
                "validationErrors": {"type": "array", "items": {"$ref": "#/definitions/apperror.FieldError"}}
            }
        },
        "main.HealthResponse": {
            "type": "object",
            "properties": {
                "memory": {"$ref": "#/definitions/main.MemoryStats"},
                "source": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "uptime": {"type": "number"}
            }
        },
        "main.MemoryStats": {
            "type": "object",
            "properties": {
                "alloc": {"type": "integer"},
                "heapInUse": {"type": "integer"},
                "numGC": {"type": "integer"},
                "sys": {"type": "integer"},
                "totalAlloc": {"type": "integer"}
            }
        },
        "main.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "main.WelcomeResponse": {
            "type": "object",
            "properties": {
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "pagination.Metadata": {
            "type": "object",
            "properties": {
                "hasNext": {"type": "boolean"},
                "hasPrevious": {"type": "boolean"},
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "total": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "service.CountResult": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "cursor": {"type": "string"},
                "hasNext": {"type": "boolean"},
                "hasPrevious": {"type": "boolean"},
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "total": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "service.ListResult": {
            "type": "object",
            "properties": {
                "cursor": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/transaction.Transaction"}},
                "source": {"type": "string", "enum": ["local", "remote"]}
            }
        },
        "service.PageResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/transaction.Transaction"}},
                "pagination": {"$ref": "#/definitions/pagination.Metadata"}
            }
        },
        "transaction.Transaction": {
            "type": "object",
            "properties": {
                "accountId": {"type": "string"},
                "amount": {"type": "number"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "type": {"type": "string", "enum": ["credit", "debit"]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Transaction API",
	Description:      "Retrieve transactions, count them page by page and compute sums and breakdowns by type.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
