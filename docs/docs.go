// Package docs holds the Swagger 2.0 document served at /swagger. It is kept
// in step with the handler annotations by hand.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/layouts": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "layouts"
                ],
                "summary": "List layouts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.LayoutResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "layouts"
                ],
                "summary": "Create layout",
                "description": "Stores a room layout and returns it with a generated layout_id.",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Layout",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LayoutPayload"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.LayoutResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/layouts/{layout_id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "layouts"
                ],
                "summary": "Get layout",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Layout ID",
                        "name": "layout_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.LayoutResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/renders": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "renders"
                ],
                "summary": "List render jobs",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.RenderJob"
                            }
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "renders"
                ],
                "summary": "Queue render job",
                "description": "Records a render request. The job starts queued with no image_url.",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Render request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RenderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RenderJob"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/renders/{job_id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "renders"
                ],
                "summary": "Get render job",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Job ID",
                        "name": "job_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RenderJob"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/renders/{job_id}/complete": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "renders"
                ],
                "summary": "Mark render job complete",
                "description": "Sets status to complete and assigns the placeholder image_url if none is set. Idempotent.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Job ID",
                        "name": "job_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RenderJob"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/materials": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "materials"
                ],
                "summary": "List material edits",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.MaterialEditResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "materials"
                ],
                "summary": "Queue material edit",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Material edit request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.MaterialEditRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MaterialEditResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/materials/{edit_id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "materials"
                ],
                "summary": "Get material edit",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Edit ID",
                        "name": "edit_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MaterialEditResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/materials/{edit_id}/complete": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "materials"
                ],
                "summary": "Mark material edit complete",
                "description": "Sets status to complete and assigns the placeholder preview_url if none is set. Idempotent.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Edit ID",
                        "name": "edit_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MaterialEditResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/settings": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Read API settings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APISettings"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Save API settings",
                "description": "Overwrites only the fields that are present and non-null; returns the merged settings.",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Settings patch",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.APISettings"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.APISettings"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/events": {
            "get": {
                "tags": [
                    "events"
                ],
                "summary": "Lifecycle event stream",
                "description": "Websocket stream of layout, render, material and settings events.",
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "description": "Reports that the process is serving requests. No dependencies are checked; state is in memory.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.APISettings": {
            "type": "object",
            "properties": {
                "asset_storage_key": {
                    "type": "string"
                },
                "nano_banana_key": {
                    "type": "string"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.FieldError"
                    }
                }
            }
        },
        "models.FieldError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            }
        },
        "models.LayoutElement": {
            "type": "object",
            "required": [
                "height",
                "id",
                "label",
                "left",
                "top",
                "type",
                "width"
            ],
            "properties": {
                "angle": {
                    "type": "number"
                },
                "fill": {
                    "type": "string"
                },
                "height": {
                    "type": "number"
                },
                "id": {
                    "type": "string",
                    "description": "ID is assigned by the client and must be unique within its layout."
                },
                "label": {
                    "type": "string"
                },
                "left": {
                    "type": "number"
                },
                "top": {
                    "type": "number"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "wall",
                        "door",
                        "window"
                    ]
                },
                "width": {
                    "type": "number"
                }
            }
        },
        "models.LayoutPayload": {
            "type": "object",
            "required": [
                "ceiling_height",
                "name"
            ],
            "properties": {
                "ceiling_height": {
                    "type": "number",
                    "example": 2.7
                },
                "elements": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.LayoutElement"
                    }
                },
                "name": {
                    "type": "string",
                    "example": "Studio"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "models.LayoutResponse": {
            "type": "object",
            "required": [
                "ceiling_height",
                "name"
            ],
            "properties": {
                "ceiling_height": {
                    "type": "number",
                    "example": 2.7
                },
                "elements": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.LayoutElement"
                    }
                },
                "layout_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "example": "Studio"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "models.MaterialEditRequest": {
            "type": "object",
            "required": [
                "color",
                "description",
                "element_id"
            ],
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#c8a165"
                },
                "description": {
                    "type": "string",
                    "example": "oak panelling"
                },
                "element_id": {
                    "type": "string",
                    "example": "wall-1"
                },
                "render_id": {
                    "type": "string"
                }
            }
        },
        "models.MaterialEditResponse": {
            "type": "object",
            "properties": {
                "edit_id": {
                    "type": "string"
                },
                "preview_url": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "queued",
                        "complete"
                    ]
                }
            }
        },
        "models.RenderJob": {
            "type": "object",
            "properties": {
                "image_url": {
                    "type": "string"
                },
                "job_id": {
                    "type": "string"
                },
                "prompt": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "queued",
                        "processing",
                        "complete"
                    ]
                },
                "style_preset": {
                    "type": "string"
                }
            }
        },
        "models.RenderRequest": {
            "type": "object",
            "required": [
                "prompt",
                "style_preset"
            ],
            "properties": {
                "furniture_assets": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "layout_id": {
                    "type": "string"
                },
                "nano_banana_key": {
                    "type": "string",
                    "description": "NanoBananaKey overrides the stored credential for this request only."
                },
                "prompt": {
                    "type": "string",
                    "example": "cozy loft"
                },
                "style_preset": {
                    "type": "string",
                    "example": "scandinavian"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "P2 Interior Design API",
	Description:      "Backend for the Nano Banana powered interior design workflow. Accepts room layouts, queues render jobs and material edits, and stores API credentials. All state lives in memory.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
