// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/api/client/export": {
            "get": {
                "description": "Downloads the client data and purchases (oldest first) as a semicolon separated file.",
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "client"
                ],
                "summary": "Export a client as CSV",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document type code (e.g. CC)",
                        "name": "document_type",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Document number",
                        "name": "document_number",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/client/search": {
            "get": {
                "description": "Returns the client identified by document type code and number, with its purchases.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "client"
                ],
                "summary": "Find a client",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document type code (e.g. CC)",
                        "name": "document_type",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Document number",
                        "name": "document_number",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.ClientProfile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/reports/loyal-customers": {
            "get": {
                "description": "Downloads a spreadsheet of the clients whose purchases in the last 30 days exceed the loyalty threshold.",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Loyalty report",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                },
                "request_id": {
                    "type": "string"
                }
            }
        },
        "service.ClientProfile": {
            "type": "object",
            "properties": {
                "documentNumber": {
                    "type": "string"
                },
                "documentType": {
                    "$ref": "#/definitions/service.DocumentTypeInfo"
                },
                "email": {
                    "type": "string"
                },
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "purchases": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.PurchaseInfo"
                    }
                }
            }
        },
        "service.DocumentTypeInfo": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "service.PurchaseInfo": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                },
                "orderNumber": {
                    "type": "string"
                },
                "purchaseDate": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Loyalty API",
	Description:      "Client lookup, CSV export and loyalty report downloads.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
