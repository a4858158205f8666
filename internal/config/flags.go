package config

import (
	"flag"
	"os"
)

// parses CLI flags for the reindexer run subcommand
func ParseRunFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("run", flag.ExitOnError)
	owner := fs.String("owner", "", "regenerate embeddings for this owner only")
	all := fs.Bool("all", false, "regenerate embeddings for every owner")
	clearCache := fs.Bool("clear-cache", false, "clear the embedding cache before regenerating")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{OwnerID: *owner, All: *all, ClearCache: *clearCache}
}

// parses CLI flags for the reindexer stats subcommand
func ParseStatsFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	owner := fs.String("owner", "", "limit counts to this owner")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{OwnerID: *owner}
}
