//go:build swagger

package apidocs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "modeler maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/plan": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["plan"],
                "summary": "Plan an inference deployment",
                "parameters": [
                    {
                        "description": "Model and accelerator",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.PlanRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.InferencePlan"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/instances": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List cataloged instances",
                "parameters": [
                    {"type": "string", "description": "Restrict to one accelerator", "name": "accelerator", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.InstancesResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List tasks with a snippet template",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.TasksResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.ModelDescriptor": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "distilbert-base-uncased-finetuned-sst-2-english"},
                "task": {"type": "string", "example": "text-classification"},
                "size_in_bytes_fp32": {"type": "integer", "example": 267832560},
                "is_tgi_supported": {"type": "boolean", "example": false}
            }
        },
        "types.PlanRequest": {
            "type": "object",
            "properties": {
                "model": {"$ref": "#/definitions/types.ModelDescriptor"},
                "accelerator": {"type": "string", "example": "gpu"}
            }
        },
        "types.Instance": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "ml.g5.xlarge"},
                "memoryInGB": {"type": "integer", "example": 24},
                "num_gpus": {"type": "integer", "example": 1}
            }
        },
        "types.InferencePlan": {
            "type": "object",
            "properties": {
                "min_instance_type": {"type": "string", "example": "ml.g5.xlarge"},
                "code_snippet": {"type": "string"},
                "is_llm": {"type": "boolean", "example": false}
            }
        },
        "types.InstancesResponse": {
            "type": "object",
            "properties": {
                "instances": {
                    "type": "object",
                    "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/types.Instance"}}
                }
            }
        },
        "types.TasksResponse": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"type": "string"}}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid JSON body"},
                "code": {"type": "integer", "example": 400}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "modeler API",
	Description:      "HTTP API for planning SageMaker inference deployments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
