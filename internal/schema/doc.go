// Package schema defines the typed measurement records that parsed LuQY
// Pro data is assembled into.
//
// Field assignment goes through closed dispatch tables keyed by field name:
// a name outside the table is dropped with a debug log rather than failing
// the record, mirroring how downstream consumers assign fields by name and
// skip unknowns. Scalar quantities use pointers so an absent cell (nil) is
// never conflated with a measured NaN.
package schema
