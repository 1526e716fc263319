// Package push is a minimal Socket.IO (v5 over Engine.IO v4) client for the
// auction backend's real-time channel, carried over a WebSocket.
//
// A Client authenticates with the bearer token during the namespace
// connect, answers server pings, and delivers named events to handlers
// registered with On. Handlers run on the single reader goroutine, one
// event at a time, in arrival order and in registration order.
//
// Auction rooms are joined and left with JoinAuction and LeaveAuction.
// After leaving a room, events whose payload names that auction id are
// dropped until the room is joined again.
//
// When the connection drops the client reconnects with capped exponential
// backoff, re-joins its rooms and runs the OnReconnect hooks. Events
// emitted while disconnected are not replayed.
package push
