// Package models defines the marketplace resources exchanged with the
// backend (auctions, bids, cars, wishlist entries, notifications, payments,
// users) together with request inputs and push-event payloads.
//
// The backend populates references inconsistently: the same field may hold a
// bare id string or an embedded document. Reference types (UserRef,
// AuctionRef, CarSummary, BidSummary) accept both shapes.
package models
