// Package sanitizer normalizes client contact data before it reaches the
// reception registry.
//
// All functions are idempotent: applying them twice yields the same result as
// applying them once. Invalid input is never rejected here; a value that cannot
// be normalized is returned trimmed so that the registry can still store it as
// opaque text.
//
// Normalization includes:
//   - Names: collapse runs of whitespace, trim leading/trailing spaces
//   - Emails: trim and lowercase
//   - Phone numbers: E.164 (+[country][number]) when parseable in the default region
package sanitizer
