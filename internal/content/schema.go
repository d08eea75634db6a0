package content

// contentSchema validates the accepted content file shapes. The
// document schema is applied either at the top level or under
// "structuredData"; sections are the only required part.
const contentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$defs": {
    "participant": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "role": {"type": "string"}
      },
      "required": ["name"]
    },
    "section": {
      "type": "object",
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "title": {"type": "string"},
        "content": {"type": "string"}
      },
      "required": ["id", "content"]
    },
    "document": {
      "type": "object",
      "properties": {
        "language": {"enum": ["en", "de"]},
        "metadata": {
          "type": "object",
          "properties": {
            "title": {"type": "string"},
            "date": {"type": "string"},
            "location": {"type": "string"},
            "dates": {
              "type": "object",
              "properties": {
                "start": {"type": "string"},
                "end": {"type": "string"}
              }
            }
          }
        },
        "company": {
          "type": "object",
          "properties": {"name": {"type": "string"}}
        },
        "participants": {
          "type": "object",
          "properties": {
            "customer": {"type": "array", "items": {"$ref": "#/$defs/participant"}},
            "oneThousand": {"type": "array", "items": {"$ref": "#/$defs/participant"}}
          }
        },
        "sections": {
          "type": "array",
          "items": {"$ref": "#/$defs/section"}
        },
        "useCases": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {"title": {"type": "string"}}
          }
        }
      },
      "required": ["sections"]
    }
  },
  "anyOf": [
    {
      "type": "object",
      "properties": {"structuredData": {"$ref": "#/$defs/document"}},
      "required": ["structuredData"]
    },
    {"$ref": "#/$defs/document"}
  ]
}`
