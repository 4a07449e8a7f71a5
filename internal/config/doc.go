// Package config holds the server's startup configuration: the flags
// parsed by main.go's urfave/cli/v3 command, plus the one required
// environment variable (spec §6 CLI, Environment). It does not parse
// flags itself — main.go owns the cli.Command definition, the same way
// the teacher's main.go owns its flag.* vars directly — this package only
// defines the resulting shape and reads the required environment variable.
package config
