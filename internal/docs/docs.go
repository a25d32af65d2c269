// Package docs registers the swagger spec with the swag runtime.
// Regenerate with `swag init -g cmd/api/main.go -o internal/docs` after
// changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "User registered, verification pending"}}
            }
        },
        "/users/verify-otp": {
            "post": {
                "tags": ["auth"],
                "summary": "Verify email",
                "responses": {"200": {"description": "Email verified, tokens issued"}}
            }
        },
        "/users/resend-otp": {
            "post": {
                "tags": ["auth"],
                "summary": "Resend verification code",
                "responses": {"200": {"description": "Code reissued"}}
            }
        },
        "/users/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login user",
                "responses": {"200": {"description": "User authenticated, tokens issued"}}
            }
        },
        "/users/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Refresh tokens",
                "responses": {"200": {"description": "New token pair issued"}}
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Get user profile",
                "responses": {"200": {"description": "User profile"}}
            }
        },
        "/real-estate": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["real-estate"],
                "summary": "List real-estate holdings",
                "responses": {"200": {"description": "Paginated properties with totals"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["real-estate"],
                "summary": "Create property",
                "responses": {"201": {"description": "Property created"}}
            }
        },
        "/real-estate/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["real-estate"],
                "summary": "Get property by ID",
                "responses": {"200": {"description": "Property details"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["real-estate"],
                "summary": "Update property",
                "responses": {"200": {"description": "Updated property"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["real-estate"],
                "summary": "Delete property",
                "responses": {"200": {"description": "Property deleted"}}
            }
        },
        "/stocks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stocks"],
                "summary": "List stock holdings",
                "responses": {"200": {"description": "Paginated stocks with totals"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["stocks"],
                "summary": "Create stock",
                "responses": {"201": {"description": "Stock created"}}
            }
        },
        "/stocks/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stocks"],
                "summary": "Get stock by ID",
                "responses": {"200": {"description": "Stock details"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["stocks"],
                "summary": "Update stock",
                "responses": {"200": {"description": "Updated stock"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["stocks"],
                "summary": "Delete stock",
                "responses": {"200": {"description": "Stock deleted"}}
            }
        },
        "/commodities": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["commodities"],
                "summary": "List commodity holdings",
                "responses": {"200": {"description": "Paginated commodities with totals"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["commodities"],
                "summary": "Create commodity",
                "responses": {"201": {"description": "Commodity created"}}
            }
        },
        "/commodities/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["commodities"],
                "summary": "Get commodity by ID",
                "responses": {"200": {"description": "Commodity details"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["commodities"],
                "summary": "Update commodity",
                "responses": {"200": {"description": "Updated commodity"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["commodities"],
                "summary": "Delete commodity",
                "responses": {"200": {"description": "Commodity deleted"}}
            }
        },
        "/businesses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["businesses"],
                "summary": "List business holdings",
                "responses": {"200": {"description": "Paginated businesses with totals"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["businesses"],
                "summary": "Create business",
                "responses": {"201": {"description": "Business created"}}
            }
        },
        "/businesses/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["businesses"],
                "summary": "Get business by ID",
                "responses": {"200": {"description": "Business details"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["businesses"],
                "summary": "Update business",
                "responses": {"200": {"description": "Updated business"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["businesses"],
                "summary": "Delete business",
                "responses": {"200": {"description": "Business deleted"}}
            }
        },
        "/cash-piles/{assetClass}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["cash-piles"],
                "summary": "Get cash pile",
                "responses": {"200": {"description": "Cash pile"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["cash-piles"],
                "summary": "Set cash pile",
                "responses": {"200": {"description": "Updated cash pile"}}
            }
        },
        "/cash-piles/{assetClass}/add": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["cash-piles"],
                "summary": "Add to cash pile",
                "responses": {"200": {"description": "Updated cash pile"}}
            }
        },
        "/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Get dashboard summary",
                "responses": {"200": {"description": "Dashboard summary"}}
            }
        },
        "/dashboard/allocation.png": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Get allocation chart",
                "responses": {"200": {"description": "PNG image"}}
            }
        },
        "/snapshots": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["snapshots"],
                "summary": "List snapshots",
                "responses": {"200": {"description": "Paginated snapshots"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["snapshots"],
                "summary": "Record snapshot",
                "responses": {"201": {"description": "Recorded snapshot"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Assetfolio API",
	Description:      "Assetfolio is a personal investment tracker covering real estate, stocks, commodities, and businesses, with per-category cash piles and a portfolio dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
