package config

import (
	"flag"
	"os"

	"holocron/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the remote notes API
//	-v string   path of the local credential vault
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the notes API")
	fs.StringVar(&cfg.VaultPath, "v", cfg.VaultPath, "path of the local credential vault")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
