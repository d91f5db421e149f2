// Package match resolves a free-text query into a ranked list of catalog keys.
//
// Resolution combines two sources. Keys that start with the query come first,
// in catalog order. The remaining slots are filled from an approximate ranking
// produced by a Matcher, skipping keys already present. The merge is a single
// pass, so the result is never longer than the configured limit and the call
// always terminates, even when fewer distinct keys exist than the limit.
//
// Queries and keys are normalized once through model.NormalizeKey before any
// comparison, so prefix and approximate matching agree on case.
package match
