package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cerl-tools/ample/internal/exit"
	"github.com/cerl-tools/ample/internal/httpclient"
)

var (
	ErrNoArguments    = errors.New("no arguments provided")
	ErrNoCommand      = errors.New("no command specified")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArg     = errors.New("command requires exactly one argument")
)

// Commands accepted by the CLI. Each takes a single positional argument:
// a query string for hits/search, a record identifier for the rest.
const (
	CommandHits   = "hits"
	CommandSearch = "search"
	CommandRecord = "record"
	CommandExport = "export"
	CommandType   = "type"
)

var commands = map[string]bool{
	CommandHits:   true,
	CommandSearch: true,
	CommandRecord: true,
	CommandExport: true,
	CommandType:   true,
}

// Config represents the complete configuration for the ample tool.
type Config struct {
	// Target database
	Database  string // alias looked up in the host table
	Host      string // literal host, overrides Database when set
	HostsFile string // optional YAML alias table merged over the defaults

	// HTTP client configuration
	RequestTimeout time.Duration
	RateLimit      float64 // requests per second (0 = unlimited)

	// Export
	Format string

	// Command and its argument
	Command string
	Arg     string
}

// Target returns the alias or literal host the command should run against.
func (c *Config) Target() string {
	if c.Host != "" {
		return c.Host
	}
	return c.Database
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Command == "" {
		return ErrNoCommand
	}
	if !commands[c.Command] {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, c.Command)
	}
	if c.Arg == "" {
		return fmt.Errorf("%w: %s", ErrMissingArg, c.Command)
	}
	if c.HostsFile != "" {
		if _, err := os.Stat(c.HostsFile); err != nil {
			return fmt.Errorf("hosts file %s not found: %w", c.HostsFile, err)
		}
	}
	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default output since we handle usage and errors ourselves
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		database  = fs.String("db", "ct", "Database alias (ct, istc, holdinst, mei, or one from -hosts-file)")
		host      = fs.String("host", "", "Literal host, bypassing the alias table")
		hostsFile = fs.String("hosts-file", "", "Path to YAML file with additional alias=host entries")
		format    = fs.String("format", "json", "Export format (json, yaml, rdf/ttl, rdf/xml, rdf/jsonld, unimarc)")
		timeout   = fs.Duration("timeout", httpclient.DefaultTimeout, "HTTP request timeout")
		rateLimit = fs.Float64("rate-limit", 0, "Rate limit in requests per second (0 for unlimited)")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	rest := fs.Args()
	config := &Config{
		Database:       *database,
		Host:           *host,
		HostsFile:      *hostsFile,
		RequestTimeout: *timeout,
		RateLimit:      *rateLimit,
		Format:         *format,
	}
	if len(rest) > 0 {
		config.Command = rest[0]
	}
	if len(rest) == 2 {
		config.Arg = rest[1]
	}
	if len(rest) > 2 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrMissingArg, Usage())
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `ample - query CERL AMPLE databases

Usage: ample [options] <command> <argument>

Commands:
  hits <query>      Print the number of matches for a query
  search <query>    Print the identifier of every match, one per line
  record <id>       Print a record as indented JSON
  export <id>       Print a record in the format selected by -format
  type <id>         Print the thesaurus record type of a record

Options:
  --db ALIAS          Database alias: ct, istc, holdinst, mei (default: ct)
  --host HOST         Literal host, bypassing the alias table
  --hosts-file FILE   YAML file with additional alias: host entries
  --format FORMAT     Export format: json, yaml, rdf/ttl, rdf/xml, rdf/jsonld, unimarc
  --timeout DURATION  HTTP request timeout (default: 30s)
  --rate-limit N      Rate limit in requests per second (0 for unlimited)
  -h, --help          Show this help message

Examples:
  ample search 'gutenberg'                 # Search the thesaurus
  ample -db istc record ib00526000         # Fetch an ISTC record
  ample -format rdf/ttl export cnp01875938 # Export a record as turtle
  ample -db mei -rate-limit 2 search 'provenance:italy'`
}
