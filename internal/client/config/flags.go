package config

import (
	"flag"
	"io"
	"os"

	"github.com/dmitrijs2005/carbid/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string     API base URL
//	-s string     push channel URL
//	-t duration   request timeout
//	-b duration   bid confirmation timeout
//	-d string     sqlite database path
//	-l string     log level
//
// os.Args is filtered first so flags owned by other loaders (-c) do not
// make the FlagSet fail. Bad values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-b", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.PushURL, "s", cfg.PushURL, "push channel URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.DurationVar(&cfg.BidConfirmTimeout, "b", cfg.BidConfirmTimeout, "bid confirmation timeout")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "sqlite database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
