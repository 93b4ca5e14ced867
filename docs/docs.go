// Package docs registra la especificación OpenAPI servida en /swagger.
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
        "/v1/biometrics": {
            "get": {
                "description": "Devuelve la fila más reciente con HRV de la tabla Biometrics, o status=offline.",
                "produces": ["application/json"],
                "tags": ["biometrics"],
                "summary": "Última lectura biométrica",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/biometrics.Snapshot"}
                    }
                }
            }
        },
        "/v1/dashboard": {
            "get": {
                "description": "Rol del día y última lectura biométrica (status=offline si no hay datos).",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Resumen de Mission Control",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dashboard.summaryResponse"}
                    }
                }
            }
        },
        "/v1/roles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "Roles de la semana",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/roles.Role"}
                        }
                    }
                }
            }
        },
        "/v1/roles/today": {
            "get": {
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "Rol del día",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/roles.todayResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "biometrics.Record": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "hrv": {"type": "number"},
                "sleepHours": {"type": "number"},
                "sleepSeconds": {"type": "number"}
            }
        },
        "biometrics.Snapshot": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/biometrics.Record"},
                "status": {"type": "string", "enum": ["online", "offline"]}
            }
        },
        "dashboard.summaryResponse": {
            "type": "object",
            "properties": {
                "biometrics": {"$ref": "#/definitions/biometrics.Snapshot"},
                "date": {"type": "string"},
                "role": {"$ref": "#/definitions/roles.Role"},
                "weekday": {"type": "string"}
            }
        },
        "roles.Role": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "description": {"type": "string"},
                "hex": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "question": {"type": "string"},
                "weekday": {"type": "string"}
            }
        },
        "roles.todayResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "role": {"$ref": "#/definitions/roles.Role"}
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
	Title:            "Zenith OS API",
	Description:      "Mission Control: rol del día y biometría desde Coda.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
