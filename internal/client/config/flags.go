package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/matcha/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server
//	-t int      request timeout in seconds
//	-d string   path to the local sqlite database
//	-m string   registration mode (verify-email | auto-login)
//
// The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with flags owned
// by other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend server")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	mode := fs.String("m", string(cfg.RegistrationMode), "registration mode (verify-email | auto-login)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
	cfg.RegistrationMode = RegistrationMode(*mode)
}
