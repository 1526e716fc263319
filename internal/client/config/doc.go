// Package config loads runtime configuration for the carbid CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional .env file.
//  3. Optional config file selected via -c or -config. Files ending in
//     ".toml" are decoded as TOML, everything else as JSON.
//  4. Command-line flags, which override earlier values.
//
// Environment
//
//	CARBID_API_URL            base URL of the HTTP API
//	CARBID_SOCKET_URL         base URL of the push channel
//	CARBID_REQUEST_TIMEOUT    per-request timeout ("30s")
//	CARBID_BID_CONFIRM        how long to wait for a bid to show up on the push channel
//	CARBID_DB                 sqlite file for the local session
//	CARBID_SESSION_BACKEND    sqlite | redis
//	CARBID_REDIS_ADDR         host:port of redis when the redis backend is used
//	CARBID_LOG_LEVEL          debug | info | warn | error
//	CARBID_LOG_FORMAT         text | json
//	CARBID_NOTIFY_SINK        none | log | amqp
//	CARBID_NOTIFY_LOG         file used by the log sink
//	CARBID_AMQP_URL           broker URL used by the amqp sink
//	CARBID_NOTIFY_QUEUE       queue name used by the amqp sink
//
// Supported flags
//
//	-a string     API base URL
//	-s string     push channel URL
//	-t duration   request timeout
//	-b duration   bid confirmation timeout
//	-d string     sqlite database path
//	-l string     log level
//
// # File schema
//
// Durations accept strings like "5s" (JSON may also use integer nanoseconds):
//
//	{
//	  "api_url": "http://localhost:4002",
//	  "socket_url": "https://car-auction-bidding.onrender.com",
//	  "request_timeout": "30s",
//	  "bid_confirm_timeout": "5s",
//	  "session_backend": "redis",
//	  "redis_addr": "localhost:6379",
//	  "notify_sink": "amqp"
//	}
//
// Missing or empty fields leave the earlier value untouched.
package config
