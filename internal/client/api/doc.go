// Package api is the HTTP JSON client for the auction backend.
//
// # Overview
//
// HTTPClient exposes one method per backend resource and verb: auth,
// auctions, bids, categories, cars, wishlist, payments, users and
// notifications. Every call attaches "Authorization: Bearer <token>" once a
// token has been set with SetToken, sends and expects JSON, and honours the
// context deadline plus the per-request timeout given to NewHTTPClient.
// There are no retries and no caching.
//
// # Error Handling
//
// A non-2xx response becomes *Error carrying the status code and the
// backend's "message" field. When the body is JSON without a message the
// text is "HTTP <code>"; when it is not JSON at all it is "Network error".
// *Error unwraps to ErrUnauthorized (401, 403) and ErrNotFound (404).
// Transport failures wrap ErrUnavailable. Match with errors.Is / errors.As.
package api
