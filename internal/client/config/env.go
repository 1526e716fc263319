package config

import (
	"os"
	"time"
)

// parseEnv overlays cfg with CARBID_* environment variables. Unparsable
// durations panic, like the other loaders.
func parseEnv(cfg *Config) {
	setString(&cfg.APIBaseURL, os.Getenv("CARBID_API_URL"))
	setString(&cfg.PushURL, os.Getenv("CARBID_SOCKET_URL"))
	setDuration(&cfg.RequestTimeout, os.Getenv("CARBID_REQUEST_TIMEOUT"))
	setDuration(&cfg.BidConfirmTimeout, os.Getenv("CARBID_BID_CONFIRM"))
	setString(&cfg.DBPath, os.Getenv("CARBID_DB"))
	setString(&cfg.SessionBackend, os.Getenv("CARBID_SESSION_BACKEND"))
	setString(&cfg.RedisAddr, os.Getenv("CARBID_REDIS_ADDR"))
	setString(&cfg.LogLevel, os.Getenv("CARBID_LOG_LEVEL"))
	setString(&cfg.LogFormat, os.Getenv("CARBID_LOG_FORMAT"))
	setString(&cfg.NotifySink, os.Getenv("CARBID_NOTIFY_SINK"))
	setString(&cfg.NotifyLogPath, os.Getenv("CARBID_NOTIFY_LOG"))
	setString(&cfg.AMQPURL, os.Getenv("CARBID_AMQP_URL"))
	setString(&cfg.NotifyQueue, os.Getenv("CARBID_NOTIFY_QUEUE"))
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v string) {
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
