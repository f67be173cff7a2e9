// Package swagger registers the OpenAPI description served at /swagger.
package swagger

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
        "/ping": {
            "get": {
                "description": "Returns a basic message",
                "produces": ["application/json"],
                "tags": ["test"],
                "summary": "Endpoint just pings the server",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"message": {"type": "string"}}}}
                }
            }
        },
        "/evaluate": {
            "post": {
                "description": "Classifies the cards, picks the scoring cards and runs the default jokers. Nothing is stored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["evaluate"],
                "summary": "Evaluates a set of cards",
                "parameters": [
                    {"description": "Card ids", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.EvaluateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/poker.ScoringResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/run": {
            "post": {
                "description": "Shuffles a new deck, deals the hand and returns the run token. The run id is also kept in the cookie session.",
                "produces": ["application/json"],
                "tags": ["run"],
                "summary": "Starts a new run",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.RunCreated"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Drops the run and clears it from the cookie session",
                "produces": ["application/json"],
                "tags": ["run"],
                "summary": "Ends the run",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"message": {"type": "string"}}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/run/me": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Hand, selection, preview of the selection, jokers and score",
                "produces": ["application/json"],
                "tags": ["run"],
                "summary": "Current state of the run",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/game.State"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/run/select": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "At most 5 cards can be selected. Selecting a 6th fails with 409 and changes nothing.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["run"],
                "summary": "Selects or deselects a card",
                "parameters": [
                    {"description": "Card id and the wanted state", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SelectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/game.State"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/run/preview": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Scores the selected cards without playing them",
                "produces": ["application/json"],
                "tags": ["run"],
                "summary": "Previews the current selection",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/poker.ScoringResult"}}
                }
            }
        },
        "/run/play": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Scores exactly the selected cards, removes them and refills the hand from the deck",
                "produces": ["application/json"],
                "tags": ["run"],
                "summary": "Plays the selected cards",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TurnResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/run/discard": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Removes the selected cards without scoring and refills the hand from the deck",
                "produces": ["application/json"],
                "tags": ["run"],
                "summary": "Discards the selected cards",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TurnResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/run/sort": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Sorts by rank (high to low) or by suit. Clears the selection.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["run"],
                "summary": "Sorts the hand",
                "parameters": [
                    {"description": "rank or suit", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SortRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/game.State"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/run/deck": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Remaining cards per suit and rank, draw probabilities and the run settings",
                "produces": ["application/json"],
                "tags": ["run"],
                "summary": "Deck overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeckOverview"}}
                }
            }
        },
        "/run/hint": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Positions in the hand of the 1 to 5 cards that would score the most right now",
                "produces": ["application/json"],
                "tags": ["run"],
                "summary": "Best selection in the hand",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/poker.Hint"}}
                }
            }
        },
        "/run/restart": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "New shuffled deck and hand, score back to zero. The token stays valid.",
                "produces": ["application/json"],
                "tags": ["run"],
                "summary": "Restarts the run",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/game.State"}}
                }
            }
        }
    },
    "definitions": {
        "error": {"type": "object", "properties": {"error": {"type": "string"}}},
        "poker.Card": {"type": "object", "properties": {"rank": {"type": "string"}, "suit": {"type": "string"}}},
        "poker.HandCard": {"type": "object", "properties": {"rank": {"type": "string"}, "suit": {"type": "string"}, "selected": {"type": "boolean"}}},
        "poker.JokerInfo": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "text": {"type": "string"}, "rarity": {"type": "string"}}},
        "poker.ScoringResult": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "scoring_cards": {"type": "array", "items": {"$ref": "#/definitions/poker.Card"}},
                "base_sum": {"type": "integer"},
                "base_multiplier": {"type": "number"},
                "additive_bonus": {"type": "integer"},
                "final_multiplier": {"type": "number"},
                "total_score": {"type": "integer"},
                "jokers_triggered": {"type": "array", "items": {"type": "boolean"}}
            }
        },
        "poker.RefillReport": {
            "type": "object",
            "properties": {
                "requested": {"type": "integer"},
                "drawn": {"type": "array", "items": {"$ref": "#/definitions/poker.Card"}},
                "full": {"type": "boolean"}
            }
        },
        "poker.Hint": {
            "type": "object",
            "properties": {
                "indices": {"type": "array", "items": {"type": "integer"}},
                "result": {"$ref": "#/definitions/poker.ScoringResult"}
            }
        },
        "poker.Stake": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "base_score_req": {"type": "integer"},
                "score_growth": {"type": "integer"},
                "base_mult": {"type": "number"},
                "mult_growth": {"type": "number"}
            }
        },
        "poker.RunMeta": {
            "type": "object",
            "properties": {
                "deck_name": {"type": "string"},
                "deck_modifiers": {"type": "string"},
                "stake": {"$ref": "#/definitions/poker.Stake"}
            }
        },
        "poker.DeckStats": {
            "type": "object",
            "properties": {
                "remaining": {"type": "integer"},
                "total": {"type": "integer"},
                "suit_counts": {"type": "object", "additionalProperties": {"type": "integer"}},
                "rank_counts": {"type": "object", "additionalProperties": {"type": "integer"}},
                "suit_probabilities": {"type": "object", "additionalProperties": {"type": "number"}},
                "rank_probabilities": {"type": "object", "additionalProperties": {"type": "number"}}
            }
        },
        "game.State": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "hand": {"type": "array", "items": {"$ref": "#/definitions/poker.HandCard"}},
                "sort_mode": {"type": "string", "enum": ["rank", "suit"]},
                "selected": {"type": "array", "items": {"type": "integer"}},
                "preview": {"$ref": "#/definitions/poker.ScoringResult"},
                "jokers": {"type": "array", "items": {"$ref": "#/definitions/poker.JokerInfo"}},
                "deck_remaining": {"type": "integer"},
                "total_score": {"type": "integer"},
                "hands_played": {"type": "integer"},
                "discards": {"type": "integer"},
                "last_result": {"$ref": "#/definitions/poker.ScoringResult"},
                "meta": {"$ref": "#/definitions/poker.RunMeta"}
            }
        },
        "game.Turn": {
            "type": "object",
            "properties": {
                "cards": {"type": "array", "items": {"$ref": "#/definitions/poker.Card"}},
                "result": {"$ref": "#/definitions/poker.ScoringResult"},
                "refill": {"$ref": "#/definitions/poker.RefillReport"}
            }
        },
        "models.EvaluateRequest": {
            "type": "object",
            "required": ["cards"],
            "properties": {"cards": {"type": "array", "items": {"type": "string"}}}
        },
        "models.SelectRequest": {
            "type": "object",
            "required": ["card"],
            "properties": {"card": {"type": "string"}, "selected": {"type": "boolean"}}
        },
        "models.SortRequest": {
            "type": "object",
            "required": ["mode"],
            "properties": {"mode": {"type": "string", "enum": ["rank", "suit"]}}
        },
        "models.RunCreated": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expires_at": {"type": "string"},
                "state": {"$ref": "#/definitions/game.State"}
            }
        },
        "models.TurnResponse": {
            "type": "object",
            "properties": {
                "turn": {"$ref": "#/definitions/game.Turn"},
                "state": {"$ref": "#/definitions/game.State"}
            }
        },
        "models.DeckOverview": {
            "type": "object",
            "properties": {
                "stats": {"$ref": "#/definitions/poker.DeckStats"},
                "meta": {"$ref": "#/definitions/poker.RunMeta"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "High Stakes API",
	Description:      "Gin-Gonic server for the \"High Stakes\" card game",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
