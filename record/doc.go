// Package record reads plan documents and writes solution reports.
//
// What this package provides:
//
//   - 📄 A YAML/JSON input document (crops + scenario) with a JSON Schema
//     that rejects malformed input before any numeric validation runs.
//   - 🔁 Decode / Load: bytes or file → validated farm.Crop slice and
//     farm.Scenario, ready for plan.Optimize.
//   - 📝 Render: plan.Solution → a stable YAML or JSON report document.
//
// Validation happens in two layers. The JSON Schema catches structural
// problems (missing fields, wrong types) with positional error messages;
// farm.Validate then enforces the numeric domain rules (positive peak
// areas, matching period counts). Both layers run on every Decode, so a
// document that decodes is safe to hand to the solver.
//
// YAML is a superset of JSON here: Decode accepts either encoding
// through the same path.
package record
