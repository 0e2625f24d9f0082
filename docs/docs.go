// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

// Package docs registers the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/server/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "GitHub Repository",
			"url": "https://github.com/tomtom215/flavorlens/issues"
		},
		"license": {
			"name": "AGPL-3.0-or-later",
			"url": "https://www.gnu.org/licenses/agpl-3.0.html"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Liveness",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.HealthResponse"
						}
					}
				}
			}
		},
		"/health/ready": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Readiness",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.ReadinessResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ReadinessResponse"
						}
					}
				}
			}
		},
		"/api/category/distribution": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Category"
				],
				"summary": "Category distribution",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "General category substring",
						"name": "category",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.DistributionRow"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/category/penetration": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Category"
				],
				"summary": "Category penetration",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "General category substring",
						"name": "category",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.PenetrationRow"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/category/trends": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Category"
				],
				"summary": "Category trends",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "General category substring",
						"name": "category",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.TrendResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/geographic/distribution": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Geographic"
				],
				"summary": "Geographic distribution",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.DistributionRow"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/geographic/penetration": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Geographic"
				],
				"summary": "Geographic penetration",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.PenetrationRow"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/geographic/trends": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Geographic"
				],
				"summary": "Geographic trends",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.TrendResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/subcategory/distribution": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Subcategory"
				],
				"summary": "Subcategory distribution",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.DistributionRow"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/subcategory/penetration": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Subcategory"
				],
				"summary": "Subcategory penetration",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.PenetrationRow"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/subcategory/trends": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Subcategory"
				],
				"summary": "Subcategory trends",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.TrendResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/category/analysis": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Category"
				],
				"summary": "Category analysis",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.CategoryAnalysisResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/geographic/regions": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Geographic"
				],
				"summary": "Geographic regions",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.GeographicData"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/subcategory/analysis": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Subcategory"
				],
				"summary": "Subcategory shares",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "General category substring",
						"name": "category",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.SubcategoryShare"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/cuisine-distribution": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cuisine"
				],
				"summary": "Cuisine distribution",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.CuisineDistribution"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/cuisine/analysis": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Cuisine"
				],
				"summary": "Cuisine analysis",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.CuisineAnalysisResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/phase": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Lifecycle"
				],
				"summary": "Adoption phase",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Dish source",
						"name": "source",
						"in": "query",
						"enum": [
							"recipe",
							"menu"
						],
						"default": "recipe"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.LifecycleData"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/recipe-share": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Lifecycle"
				],
				"summary": "Recipe share",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.ShareData"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/menu-share": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Lifecycle"
				],
				"summary": "Menu share",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.ShareData"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/social-share": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Lifecycle"
				],
				"summary": "Social share",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.ShareData"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/general/summary-stats": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"General"
				],
				"summary": "Summary statistics",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SummaryStatsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/general/trends": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"General"
				],
				"summary": "Overall adoption trend",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.AdoptionTrendResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/format-adoption": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Applications"
				],
				"summary": "Format adoption",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.FormatData"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/applications/detailed": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Applications"
				],
				"summary": "Detailed applications",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "General category substring",
						"name": "category",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Lifecycle phase",
						"name": "lifecycle_phase",
						"in": "query",
						"enum": ["emerging", "growing", "mature", "declining"]
					},
					{
						"type": "number",
						"description": "Minimum share percent",
						"name": "min_share",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.ApplicationDetail"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/texture-attributes": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Consumer"
				],
				"summary": "Texture attributes",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.TextureData"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/season/distribution": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Season"
				],
				"summary": "Season distribution",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SeasonResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/serving-temperature": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Season"
				],
				"summary": "Serving temperature",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.TemperatureDistribution"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/pairings": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Pairings"
				],
				"summary": "Ingredient pairings",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "General category substring",
						"name": "category",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query",
						"default": 1,
						"minimum": 1
					},
					{
						"type": "integer",
						"description": "Page size",
						"name": "limit",
						"in": "query",
						"default": 10,
						"minimum": 1,
						"maximum": 100
					},
					{
						"type": "string",
						"description": "Sort key",
						"name": "sort_by",
						"in": "query",
						"enum": [
							"share_percent",
							"growth",
							"appeal_score",
							"dish_count",
							"partner_name"
						],
						"default": "share_percent"
					},
					{
						"type": "string",
						"description": "Sort direction",
						"name": "sort_direction",
						"in": "query",
						"enum": [
							"asc",
							"desc"
						],
						"default": "desc"
					},
					{
						"type": "string",
						"description": "Partner lifecycle phase",
						"name": "lifecycle_phase",
						"in": "query",
						"enum": [
							"emerging",
							"growing",
							"mature"
						]
					},
					{
						"type": "string",
						"description": "Partner name substring",
						"name": "search",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.PairingsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/consumer-insights/{attribute_type}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Consumer"
				],
				"summary": "Consumer attribute insights",
				"parameters": [
					{
						"type": "string",
						"description": "Attribute table",
						"name": "attribute_type",
						"in": "path",
						"required": true,
						"enum": [
							"flavor",
							"texture",
							"aroma",
							"diet",
							"functional_health",
							"occasions",
							"convenience",
							"social",
							"emotional",
							"cooking_technique"
						]
					},
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "First year included",
						"name": "start_year",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Last year included",
						"name": "end_year",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.AttributeInsightsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/dish/top-dishes": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Dish"
				],
				"summary": "Top dishes",
				"parameters": [
					{
						"type": "string",
						"description": "Ingredient name (case-insensitive substring match)",
						"name": "ingredient",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Dish source",
						"name": "source",
						"in": "query",
						"enum": [
							"recipe",
							"menu",
							"social"
						]
					},
					{
						"type": "string",
						"description": "General category substring",
						"name": "category",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Specific category substring",
						"name": "subcategory",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Cuisine substring",
						"name": "cuisine",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Country substring",
						"name": "country",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.TopDish"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"models.APIError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"details": {
					"type": "object",
					"additionalProperties": true
				},
				"request_id": {
					"type": "string"
				}
			}
		},
		"models.ErrorResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"error": {
					"$ref": "#/definitions/models.APIError"
				}
			}
		},
		"models.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"service": {
					"type": "string"
				},
				"version": {
					"type": "string"
				}
			}
		},
		"models.ReadinessResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"database": {
					"type": "string"
				}
			}
		},
		"models.DistributionRow": {
			"type": "object"
		},
		"models.PenetrationRow": {
			"type": "object"
		},
		"models.TrendResponse": {
			"type": "object"
		},
		"models.CategoryAnalysisResponse": {
			"type": "object"
		},
		"models.GeographicData": {
			"type": "object"
		},
		"models.SubcategoryShare": {
			"type": "object"
		},
		"models.CuisineDistribution": {
			"type": "object"
		},
		"models.CuisineAnalysisResponse": {
			"type": "object"
		},
		"models.LifecycleData": {
			"type": "object"
		},
		"models.ShareData": {
			"type": "object"
		},
		"models.SummaryStatsResponse": {
			"type": "object"
		},
		"models.SeasonResponse": {
			"type": "object"
		},
		"models.TemperatureDistribution": {
			"type": "object"
		},
		"models.PairingsResponse": {
			"type": "object"
		},
		"models.AttributeInsightsResponse": {
			"type": "object"
		},
		"models.AdoptionTrendResponse": {
			"type": "object"
		},
		"models.FormatData": {
			"type": "object"
		},
		"models.ApplicationDetail": {
			"type": "object"
		},
		"models.TextureData": {
			"type": "object"
		},
		"models.TopDish": {
			"type": "object"
		}
	},
	"tags": [
		{
			"name": "Health"
		},
		{
			"name": "Category"
		},
		{
			"name": "Geographic"
		},
		{
			"name": "Subcategory"
		},
		{
			"name": "Cuisine"
		},
		{
			"name": "Lifecycle"
		},
		{
			"name": "General"
		},
		{
			"name": "Season"
		},
		{
			"name": "Pairings"
		},
		{
			"name": "Consumer"
		},
		{
			"name": "Dish"
		},
		{
			"name": "Applications"
		}
	]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "FlavorLens API",
	Description:      "Ingredient trend analytics over recipe, menu and social dish data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
