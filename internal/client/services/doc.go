// Package services contains the application services of the carbid client.
//
// A service validates input, marks the request as loading in the store,
// calls the remote API and commits the outcome to the store. Views (the CLI
// here) call services and render store snapshots; they never talk to the
// API directly. Bridge feeds push events into the same store.
package services
