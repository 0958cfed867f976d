// Package keyed decodes a top-level JSON object into a slice that keeps the
// document's key order.
//
// Go maps do not preserve insertion order, and the collection endpoint
// returns its records as one object keyed by record id. Decode walks the
// object with json.Decoder tokens and decodes each member value into T.
//
// # Accepted documents
//
//   - An object: one Entry per member, in document order.
//   - An array: one Entry per element, keyed "0", "1", ... A document store
//     may return an array when all keys are small integers.
//   - null: no entries and no error; an empty collection.
//
// An empty body, a scalar, malformed JSON, or any data after the top-level
// value is an error.
package keyed
