package schemagen

import (
	"encoding/json"
	"fmt"
)

const (
	systemPrompt = "You are a helpful AI assistant that generates JSON Schema from data. " +
		"Only respond with valid JSON Schema, no explanations."

	temperature     float32 = 0.2
	maxOutputTokens int32   = 4000
)

const schemaFormatExample = `{
  "type": "object",
  "required": ["field1", "field2"],
  "properties": {
    "field1": { "type": "string", "title": "Field 1" },
    "field2": { "type": "number", "title": "Field 2" }
  }
}`

func buildPrompt(sample []SheetRow) (string, error) {
	data, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode sample rows: %w", err)
	}

	return fmt.Sprintf(`Generate a JSON Schema that describes one record of the following spreadsheet rows.

Sample data:
%s

Use this format:
%s

Give every property a "type" and a human readable "title". Detect appropriate data types, including strings, numbers, dates, and nested objects or arrays. Only output valid JSON.`, data, schemaFormatExample), nil
}
