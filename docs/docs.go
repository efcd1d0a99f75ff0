// Package docs holds the generated OpenAPI document served at /swagger.
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
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Liveness message",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/chi.messageResponse"
						}
					}
				}
			}
		},
		"/test_db": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Run a test query against the profiles table",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/chi.testDBSuccess"
						}
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
					"system"
				],
				"summary": "Component health",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/chi.healthResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/chi.healthResponse"
						}
					}
				}
			}
		},
		"/recommendations/{seeker_profile_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"recommendations"
				],
				"summary": "Recommend jobs for a seeker profile",
				"parameters": [
					{
						"type": "string",
						"description": "Seeker profile id",
						"name": "seeker_profile_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"default": 10,
						"description": "Result count, clamped to [1,50]",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/chi.jobRecommendationsResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/chi.errorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/chi.errorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/chi.errorResponse"
						}
					}
				}
			}
		},
		"/recommendations/job/{job_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"recommendations"
				],
				"summary": "Recommend seekers for a job posting",
				"parameters": [
					{
						"type": "string",
						"description": "Job posting id",
						"name": "job_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"default": 10,
						"description": "Result count, clamped to [1,50]",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/chi.seekerRecommendationsResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/chi.errorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/chi.errorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/chi.errorResponse"
						}
					}
				}
			}
		},
		"/recommendations/by-user/{user_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"recommendations"
				],
				"summary": "Recommend jobs for the seeker profile of an auth user",
				"parameters": [
					{
						"type": "string",
						"description": "Auth user id",
						"name": "user_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"default": 10,
						"description": "Result count, clamped to [1,50]",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/chi.jobRecommendationsResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/chi.errorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/chi.errorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/chi.errorResponse"
						}
					}
				}
			}
		},
		"/debug/seekers": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"debug"
				],
				"summary": "List stored seeker profiles",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/chi.debugSeekersResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/chi.errorResponse"
						}
					}
				}
			}
		},
		"/debug/jobs": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"debug"
				],
				"summary": "List stored job ids and titles",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/chi.debugJobsResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/chi.errorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"chi.messageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"chi.errorResponse": {
			"type": "object",
			"properties": {
				"detail": {
					"type": "string"
				}
			}
		},
		"chi.idRow": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				}
			}
		},
		"chi.testDBSuccess": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/chi.idRow"
					}
				}
			}
		},
		"chi.healthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"checks": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"chi.jobRecommendation": {
			"type": "object",
			"properties": {
				"job_id": {
					"type": "string"
				},
				"score": {
					"type": "number"
				},
				"title": {
					"type": "string"
				},
				"company_name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			}
		},
		"chi.seekerRecommendation": {
			"type": "object",
			"properties": {
				"profile_id": {
					"type": "string"
				},
				"score": {
					"type": "number"
				},
				"full_name": {
					"type": "string"
				},
				"bio": {
					"type": "string"
				},
				"skills": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"chi.jobRecommendationsResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"recommendations": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/chi.jobRecommendation"
					}
				}
			}
		},
		"chi.seekerRecommendationsResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"recommendations": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/chi.seekerRecommendation"
					}
				}
			}
		},
		"chi.seekerRow": {
			"type": "object",
			"properties": {
				"profile_id": {
					"type": "string"
				},
				"bio": {
					"type": "string"
				},
				"skills": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"chi.debugSeekersResponse": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer"
				},
				"seekers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/chi.seekerRow"
					}
				}
			}
		},
		"chi.jobRow": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				}
			}
		},
		"chi.debugJobsResponse": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer"
				},
				"jobs": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/chi.jobRow"
					}
				}
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
	Title:            "TalentFlow Engine API",
	Description:      "Job and seeker recommendations by text similarity.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
