// Package movies is the HTTP client for the movie collection endpoint.
//
// # Overview
//
// The collection is a single URL backed by a JSON document store (a Firebase
// realtime database path such as https://<db>.firebaseio.com/movies.json).
// It supports two calls:
//
//   - GET lists every stored movie as one JSON object keyed by record id
//   - POST stores a new movie and answers with the generated id
//
// # Ordering
//
// Go maps do not remember key order, so Fetch decodes the response with a
// streaming token reader (package keyed) and returns movies in the order the
// store emitted them. A JSON null, which is how the store represents an
// empty collection, yields an empty list.
//
// # Error Handling
//
// Fetch and Add distinguish three kinds of failure:
//
//   - Non-success status: an *APIError whose message is always
//     "Something went wrong!" and which matches ErrSomethingWentWrong via
//     errors.Is. The status and a body snippet are kept for logs.
//   - Transport failure: the error from net/http is returned unwrapped so
//     its message can be shown to the user verbatim.
//   - Malformed body: wrapped as "decode response: ...".
//
// No call is retried.
//
// # Usage Example
//
//	client, err := movies.NewClient(cfg.CollectionURL, movies.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	list, err := client.Fetch(ctx)
package movies
