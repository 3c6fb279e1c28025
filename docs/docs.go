// Package docs holds the generated OpenAPI definition served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/v1/auth/check": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Check the session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.checkAuthResponse"}
                    }
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.loginResponse"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.messageResponse"}
                    }
                }
            }
        },
        "/v1/clientes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clientes"],
                "summary": "Search clients by partial name",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Partial name (min 3 characters to trigger a lookup)",
                        "name": "nome",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/domain.ClienteSummary"}
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clientes"],
                "summary": "Register a client",
                "parameters": [
                    {
                        "description": "Client record (sans id)",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.Cliente"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/domain.Cliente"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        },
        "/v1/clientes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clientes"],
                "summary": "Get one client",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Client id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.Cliente"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clientes"],
                "summary": "Update a client",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Client id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Full client record",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.Cliente"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.Cliente"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["clientes"],
                "summary": "Delete a client",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Client id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.messageResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        },
        "/v1/quartos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quartos"],
                "summary": "List rooms",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Only unoccupied rooms",
                        "name": "disponiveis",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/domain.Room"}
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quartos"],
                "summary": "Register a room",
                "parameters": [
                    {
                        "description": "Room record (sans id)",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.Room"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/domain.Room"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        },
        "/v1/quartos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quartos"],
                "summary": "Get one room",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Room id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.Room"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quartos"],
                "summary": "Update a room",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Room id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Full room record",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.Room"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.Room"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["quartos"],
                "summary": "Delete a room",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Room id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.messageResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        },
        "/v1/reservas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "List all reservations with embedded cliente and room",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/domain.Reservation"}
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Create a reservation",
                "parameters": [
                    {
                        "description": "Reservation draft",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.reservationRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/handler.submitResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        },
        "/v1/reservas/documento": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["documentos"],
                "summary": "Download the consolidated reservation report",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "file"}
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        },
        "/v1/reservas/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Load one reservation for editing",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Reservation id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.editContextResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Update a reservation",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Reservation id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Full reservation record",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.reservationRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.submitResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Delete a reservation (confirmed)",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Reservation id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Confirmation token",
                        "name": "X-Confirm-Token",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.messageResponse"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    },
                    "428": {
                        "description": "Precondition Required",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        },
        "/v1/reservas/{id}/confirmacao": {
            "post": {
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Request a delete confirmation token",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Reservation id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.confirmResponse"}
                    }
                }
            }
        },
        "/v1/reservas/{id}/documento": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["documentos"],
                "summary": "Download the guest voucher for one reservation",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Reservation id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "file"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Cliente": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "cpf": {"type": "string"},
                "email": {"type": "string"},
                "profissao": {"type": "string"},
                "nacionalidade": {"type": "string"},
                "dataNascimento": {"type": "string"},
                "sexo": {"type": "string"},
                "rg": {"type": "string"},
                "residencia": {"type": "string"},
                "cep": {"type": "string"},
                "cidade": {"type": "string"},
                "pais": {"type": "string"},
                "telefoneResidencial": {"type": "string"},
                "telefoneComercial": {"type": "string"},
                "motivoViagem": {"type": "string"},
                "meioTransporte": {"type": "string"},
                "proximoDestino": {"type": "string"}
            }
        },
        "domain.ClienteSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"}
            }
        },
        "domain.Reservation": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "clienteId": {"type": "integer"},
                "roomId": {"type": "integer"},
                "checkInDate": {"type": "string"},
                "checkOutDate": {"type": "string"},
                "status": {"type": "string"},
                "numeroDeAdultos": {"type": "integer"},
                "numeroDeCriancas0A5Anos": {"type": "integer"},
                "numeroDeCriancas": {"type": "integer"},
                "incluirCafeDaManha": {"type": "boolean"},
                "totalPrice": {"type": "number"},
                "cliente": {"$ref": "#/definitions/domain.Cliente"},
                "room": {"$ref": "#/definitions/domain.Room"}
            }
        },
        "domain.Room": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "roomNumber": {"type": "string"},
                "type": {"type": "string"},
                "pricePerNight": {"type": "number"},
                "isOccupied": {"type": "boolean"}
            }
        },
        "handler.checkAuthResponse": {
            "type": "object",
            "properties": {
                "isAuthenticated": {"type": "boolean"}
            }
        },
        "handler.confirmResponse": {
            "type": "object",
            "properties": {
                "confirmToken": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.editContextResponse": {
            "type": "object",
            "properties": {
                "reservation": {"$ref": "#/definitions/domain.Reservation"},
                "clienteNome": {"type": "string"},
                "rooms": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/domain.Room"}
                }
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.reservationRequest": {
            "type": "object",
            "required": ["clienteId", "roomId", "checkInDate", "checkOutDate", "status", "numeroDeAdultos"],
            "properties": {
                "clienteId": {"type": "integer"},
                "roomId": {"type": "integer"},
                "checkInDate": {"type": "string"},
                "checkOutDate": {"type": "string"},
                "status": {"type": "string", "enum": ["Ativa", "Concluída", "Cancelada"]},
                "numeroDeAdultos": {"type": "integer"},
                "numeroDeCriancas0A5Anos": {"type": "integer"},
                "numeroDeCriancas": {"type": "integer"},
                "incluirCafeDaManha": {"type": "boolean"}
            }
        },
        "handler.submitResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "reservation": {"$ref": "#/definitions/domain.Reservation"},
                "draft": {"$ref": "#/definitions/domain.Reservation"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Hotel do Mar Reservation Admin API",
	Description:      "Admin backoffice for the hotel reservation gateway: reservation lifecycle, client and room registries, and printable PDF documents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
