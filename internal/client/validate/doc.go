// Package validate checks form input before any request leaves the client.
// Struct rules are declared with `validate` tags on the models and run by
// go-playground/validator; bid rules depend on the signed-in user and the
// cached auction and are checked by Bid.
package validate
