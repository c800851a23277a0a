// Package docs registers the OpenAPI description served at /swagger.
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
        "/users": {
            "post": {
                "tags": ["users"],
                "summary": "Create a user profile",
                "responses": {
                    "201": {"description": "Profile created successfully"},
                    "400": {"description": "Invalid request data"}
                }
            }
        },
        "/users/current": {
            "get": {
                "tags": ["users"],
                "summary": "Get the active profile",
                "responses": {
                    "200": {"description": "Profile retrieved successfully"},
                    "404": {"description": "No profile exists"}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["users"],
                "summary": "Get a profile by ID",
                "responses": {
                    "200": {"description": "Profile retrieved successfully"},
                    "404": {"description": "Profile not found"}
                }
            },
            "put": {
                "tags": ["users"],
                "summary": "Update a profile",
                "responses": {
                    "200": {"description": "Profile updated successfully"},
                    "400": {"description": "Invalid request data"}
                }
            },
            "patch": {
                "tags": ["users"],
                "summary": "Patch a profile",
                "responses": {
                    "200": {"description": "Profile updated successfully"},
                    "404": {"description": "Profile not found"}
                }
            }
        },
        "/users/{id}/streak": {
            "get": {
                "tags": ["users"],
                "summary": "Get a user's workout streak",
                "responses": {
                    "200": {"description": "Streak retrieved successfully"},
                    "404": {"description": "Streak not found"}
                }
            }
        },
        "/users/{id}/metrics": {
            "get": {
                "tags": ["users"],
                "summary": "Get derived health metrics for a user",
                "responses": {
                    "200": {"description": "Metrics computed successfully"},
                    "404": {"description": "Profile not found"}
                }
            }
        },
        "/activity": {
            "post": {
                "tags": ["activity"],
                "summary": "Log daily activity",
                "responses": {
                    "200": {"description": "Activity logged successfully"},
                    "400": {"description": "Invalid request data"}
                }
            }
        },
        "/activity/user/{user_id}": {
            "get": {
                "tags": ["activity"],
                "summary": "Get activity logs for a user",
                "responses": {
                    "200": {"description": "Activities retrieved successfully"},
                    "400": {"description": "Invalid parameters"}
                }
            }
        },
        "/exercise": {
            "post": {
                "tags": ["exercise"],
                "summary": "Log a workout",
                "responses": {
                    "201": {"description": "Exercise logged successfully"},
                    "400": {"description": "Invalid request data"}
                }
            }
        },
        "/exercise/user/{user_id}": {
            "get": {
                "tags": ["exercise"],
                "summary": "Get exercise logs for a user",
                "responses": {
                    "200": {"description": "Exercises retrieved successfully"},
                    "400": {"description": "Invalid parameters"}
                }
            }
        },
        "/exercise/catalog": {
            "get": {
                "tags": ["exercise"],
                "summary": "List the built-in exercise catalog",
                "responses": {
                    "200": {"description": "Catalog retrieved successfully"}
                }
            }
        },
        "/food/log": {
            "post": {
                "tags": ["food"],
                "summary": "Log a food intake",
                "responses": {
                    "201": {"description": "Food logged successfully"},
                    "404": {"description": "Food item not found"}
                }
            }
        },
        "/food/log/user/{user_id}": {
            "get": {
                "tags": ["food"],
                "summary": "Get a day's food logs with computed nutrition",
                "responses": {
                    "200": {"description": "Food logs retrieved successfully"},
                    "400": {"description": "Invalid parameters"}
                }
            }
        },
        "/food/items": {
            "get": {
                "tags": ["food"],
                "summary": "Search food items by name",
                "responses": {
                    "200": {"description": "Food items retrieved successfully"}
                }
            },
            "post": {
                "tags": ["food"],
                "summary": "Add a custom food item",
                "responses": {
                    "201": {"description": "Food item created successfully"},
                    "409": {"description": "Duplicate name"}
                }
            }
        },
        "/food/items/all": {
            "get": {
                "tags": ["food"],
                "summary": "List every food item",
                "responses": {
                    "200": {"description": "Food items retrieved successfully"}
                }
            }
        },
        "/summary/{user_id}": {
            "get": {
                "tags": ["summary"],
                "summary": "Get the daily rollup for a user",
                "responses": {
                    "200": {"description": "Summary computed successfully"},
                    "404": {"description": "Profile not found"}
                }
            }
        },
        "/progress/{user_id}": {
            "get": {
                "tags": ["summary"],
                "summary": "Get the trend series for a user",
                "responses": {
                    "200": {"description": "Progress computed successfully"},
                    "400": {"description": "Invalid window"}
                }
            }
        },
        "/plans": {
            "post": {
                "tags": ["plans"],
                "summary": "Create a workout plan",
                "responses": {
                    "201": {"description": "Plan created successfully"},
                    "400": {"description": "Invalid request data"}
                }
            }
        },
        "/plans/user/{user_id}": {
            "get": {
                "tags": ["plans"],
                "summary": "Get a user's workout plans",
                "responses": {
                    "200": {"description": "Plans retrieved successfully"}
                }
            }
        },
        "/plans/{id}": {
            "delete": {
                "tags": ["plans"],
                "summary": "Delete a workout plan",
                "responses": {
                    "200": {"description": "Plan deleted successfully"},
                    "404": {"description": "Plan not found"}
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
	Title:            "FitTrack API",
	Description:      "Local data-access API of the FitTrack fitness tracker",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
