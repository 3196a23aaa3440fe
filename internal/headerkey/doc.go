// Package headerkey canonicalizes raw header labels from LuQY Pro export
// files into stable lookup keys.
//
// Instrument exports drift in Unicode form, whitespace, and unit spelling:
// the same setting appears as "Subcell area (cm²)", "Subcell area (cm^2)",
// or, after a bad codepage round trip, "Subcell area (cmÂ²)". Canonicalize
// collapses all of these to one spelling so the field-mapping tables never
// need per-variant entries.
package headerkey
