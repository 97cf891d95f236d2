package record

import "github.com/santhosh-tekuri/jsonschema/v5"

// documentSchema is the structural contract for a plan document. Numeric
// domain rules (positive peaks, matching period counts) stay in
// farm.Validate; the schema only pins shapes and types.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["crops", "scenario"],
  "additionalProperties": false,
  "properties": {
    "crops": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "peak_revenue", "base_revenue", "peak_area", "variable_cost", "annual_labor"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "peak_revenue": {"type": "number"},
          "base_revenue": {"type": "number"},
          "peak_area": {"type": "number"},
          "variable_cost": {"type": "number"},
          "annual_labor": {"type": "number"},
          "period_labor": {"type": "array", "items": {"type": "number"}},
          "initial_cost": {"type": "number"}
        }
      }
    },
    "scenario": {
      "type": "object",
      "required": ["land_limit"],
      "additionalProperties": false,
      "properties": {
        "land_limit": {"type": "number"},
        "income_min": {"type": "number"},
        "living_cost": {"type": "number"},
        "subsidy": {"type": "number"},
        "period_caps": {"type": "array", "items": {"type": "number"}},
        "skill": {"type": "number"},
        "finance": {
          "type": "object",
          "required": ["self_capital", "interest_rate", "repayment_years"],
          "additionalProperties": false,
          "properties": {
            "self_capital": {"type": "number"},
            "interest_rate": {"type": "number"},
            "repayment_years": {"type": "integer"},
            "max_loan": {"type": "number"}
          }
        }
      }
    }
  }
}`

// compiledSchema is compiled once at init; the schema is a constant, so
// a compile failure is a programming error, not an input error.
var compiledSchema = jsonschema.MustCompileString("agroplan://plan-document.schema.json", documentSchema)
