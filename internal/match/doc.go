// Package match resolves the counterpart of the delimiter under the
// cursor. Three strategies are tried in strict order: markdown fence lines,
// same-line quotes (simple and typographic), and the host widget's native
// bracket jump. The first two are pure; only the bracket fallback moves the
// host cursor. A miss at every level returns the input position unchanged.
package match
