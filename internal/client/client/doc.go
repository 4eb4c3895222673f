// Package client is the backend gateway of the food ordering client.
//
// # Overview
//
// The package provides:
//  1. The transport-agnostic Client contract: device registration, profile
//     read/write, menu list/detail/image, order creation and order fetch.
//  2. HTTPClient, the JSON-over-HTTPS implementation against a fixed base
//     URL. Every request carries a fresh X-Request-ID, waits on an optional
//     rate limiter and is recorded in the metrics package.
//  3. Local database bootstrap (InitDatabase, RunMigrations) applying the
//     embedded goose migrations to an SQLite file.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Every non-2xx response is a
// *StatusError carrying the numeric status; use StatusCode or errors.As to
// classify it. A 404 also matches ErrNotFound.
//
// The gateway is stateless apart from its HTTP client and is safe for
// concurrent use. No client-side timeout is applied; callers bound requests
// through their context.
package client
