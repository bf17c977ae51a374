// Package convert turns records returned by the accounting API into
// JSON-safe values, and parses the date strings callers send back.
//
// Money is carried as decimal.Decimal and always leaves this package as
// its exact decimal string, never as a float. Dates become YYYY-MM-DD,
// timestamps RFC 3339. Structs are walked field by field in declaration
// order; unexported fields, fields tagged json:"-" and JSON names that
// start with InternalPrefix are never emitted.
//
// Nothing here returns an error for an unexpected value shape: the
// converter degrades to the value's fmt representation instead.
package convert
