// Package client is the transport side of the logdash client.
//
// # Overview
//
//  1. Client is the contract with the REST backend: login, registration,
//     OTP verification, the password-reset steps and the log analytics
//     queries. HTTPClient implements it over net/http with JSON bodies,
//     a per-request timeout, an X-Request-ID header and an optional
//     bearer token taken from a TokenSource.
//  2. InitDatabase and RunMigrations bootstrap the local SQLite database
//     that holds the credential token.
//
// # Error Handling
//
// Every failure falls into one of three categories:
//
//   - *APIError: the server answered with an error payload;
//   - ErrUnavailable: the server could not be reached or timed out;
//   - ErrUnknown: anything else, such as an undecodable response.
//
// UserMessage maps any error to the line shown to the user. Calls are made
// exactly once; there is no retry or backoff.
package client
