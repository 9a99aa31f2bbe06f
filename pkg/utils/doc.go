// Package utils is a catalog of small, stateless helpers for dates, numbers,
// strings, URL encoding, colors and email addresses.
//
// Helpers that accept or return values which may be absent use the nullable
// types from gopkg.in/guregu/null.v4. Rounding and number formatting follow
// the conventions of browser JavaScript (Math.round, Number.prototype.toFixed,
// parseFloat), so output matches what a web frontend renders for the same input.
package utils
