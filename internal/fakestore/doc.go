// Package fakestore is an in-memory stand-in for the remote movie
// collection, served with a chi router.
//
// It answers like a Firebase realtime database: GET returns every record as
// one JSON object keyed by id in insertion order (null when empty), and POST
// stores the body under a new "-<uuid>" key and answers {"name": key}.
//
// # Test Controls
//
//   - Seed: insert a record under a chosen key
//   - FailWith: answer every request with a status code
//   - Hold: block list requests until released
//   - Posts, PostHeaders, Gets, Len: inspect what the client sent
//
// It backs the client, UI, app and CLI tests.
package fakestore
