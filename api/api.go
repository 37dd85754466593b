package api

import "embed"

// JSONSchema files, schema id is the "$id" field or file name without extension
//
//go:embed jsonschema/*.json
var JSONSchema embed.FS

// JSONSchemaRoot directory inside JSONSchema
const JSONSchemaRoot = "jsonschema"

// SchemaWebhookEvent schema id of inbound webhook delivery body
const SchemaWebhookEvent = "webhook_event"
