// Package rating fetches one movie record from a public rating API and
// flattens its top-level fields into id/score pairs.
//
// The result is only ever logged: nothing in the UI depends on it, and a
// failure never reaches the movie pane.
//
// # Credentials
//
// The api key comes from configuration (rating_api_key or
// REEL_RATING_API_KEY). NewClient refuses an empty key, and transport errors
// have the key replaced with REDACTED before they reach the log.
//
// # Status handling
//
// The body is decoded whatever the HTTP status, so an API error document
// such as {"status_code":7,"status_message":"Invalid API key"} is flattened
// and logged like a record, with an extra warning carrying the status. A
// status >= 400 with a body that is not JSON is returned as an error.
package rating
