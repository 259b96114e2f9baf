// Package docs holds the Swagger specs served at /swagger/ when
// SWAGGER_ENABLED is set. Each service registers under its own instance name.
//
// This file is maintained by hand in swag's output format; `swag init` only
// emits one instance per run, so keep it in sync with the handler
// annotations when routes change.
package docs

import "github.com/swaggo/swag"

const systemPaths = `
        "/": {
            "get": {
                "description": "Returns the service name and version",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Service info",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.ServiceInfo"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports that the service process is up",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.HealthStatus"}
                    }
                }
            }
        }`

const chatPaths = `,
        "/chat": {
            "post": {
                "description": "Accepts any JSON object and returns the bot's reply",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Send a chat message",
                "parameters": [
                    {
                        "description": "Chat message",
                        "name": "message",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.ChatRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.ChatResponse"}
                    },
                    "422": {
                        "description": "Body is not a JSON object",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    }
                }
            }
        }`

const definitions = `
        "models.ChatRequest": {
            "type": "object",
            "additionalProperties": {}
        },
        "models.ChatResponse": {
            "type": "object",
            "properties": {
                "response": {"type": "string", "example": "Hello! This is a placeholder response from the bot service."}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Not Found"},
                "message": {"type": "string", "example": "Cannot GET /unknown"},
                "statusCode": {"type": "integer", "example": 404}
            }
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "service": {"type": "string", "example": "user-service"},
                "status": {"type": "string", "example": "healthy"}
            }
        },
        "models.ServiceInfo": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "ChatAppointment User Service"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        }`

func docTemplate(paths string) string {
	return `{
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
    "paths": {` + paths + `
    },
    "definitions": {` + definitions + `
    }
}`
}

// UserServiceInfo holds exported Swagger Info for the user service.
var UserServiceInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ChatAppointment User Service",
	Description:      "Health and version endpoints of the ChatAppointment user service.",
	InfoInstanceName: "user-service",
	SwaggerTemplate:  docTemplate(systemPaths),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// BotServiceInfo holds exported Swagger Info for the bot service.
var BotServiceInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ChatAppointment Bot Service",
	Description:      "Health, version and chat endpoints of the ChatAppointment bot service.",
	InfoInstanceName: "bot-service",
	SwaggerTemplate:  docTemplate(systemPaths + chatPaths),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(UserServiceInfo.InstanceName(), UserServiceInfo)
	swag.Register(BotServiceInfo.InstanceName(), BotServiceInfo)
}
