// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argslist parses a token list against a descriptor schema file and
// prints the resulting mapping.
//
//	argslist --schema args.toml -- -b -f in_1.js in_2.js -t 16
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shayne/yargs"
	"github.com/yeetrun/argslist/pkg/argslist"
	"github.com/yeetrun/argslist/pkg/env"
	"github.com/yeetrun/argslist/pkg/schema"
	"github.com/yeetrun/argslist/pkg/tui"
	"gopkg.in/yaml.v3"
)

const schemaEnv = "ARGSLIST_SCHEMA"

const usage = `argslist - parse tokens against a descriptor schema

USAGE:
    argslist [OPTIONS] -- [TOKENS...]

OPTIONS:
    -s, --schema PATH        Descriptor schema, TOML or YAML (` + schemaEnv + `)
    --schema-format FORMAT   Schema format (toml|yaml), inferred from the extension by default
    --format FORMAT          Output format (json|yaml|toml|env), default json
    --env-prefix PREFIX      Variable name prefix for --format env and --env-file
    --env-file PATH          Also write the mapping as env assignments to PATH
    --marker=CHAR            Flag marker character, default -
    --print-args             Echo the parsed mapping to stderr
    --no-color               Disable colored diagnostics
    --strict                 Exit with status 2 when a warning was emitted
    -h, --help               Show this help message

With no tokens, or with "help" as the first token, the schema's argument
help is printed.
`

type cliFlags struct {
	Schema       string `flag:"schema" short:"s" help:"Descriptor schema, TOML or YAML (ARGSLIST_SCHEMA)"`
	SchemaFormat string `flag:"schema-format" help:"Schema format (toml|yaml)"`
	Format       string `flag:"format" default:"json" help:"Output format (json|yaml|toml|env)"`
	EnvPrefix    string `flag:"env-prefix" help:"Variable name prefix for --format env and --env-file"`
	EnvFile      string `flag:"env-file" help:"Also write the mapping as env assignments to PATH"`
	Marker       string `flag:"marker" default:"-" help:"Flag marker character"`
	PrintArgs    bool   `flag:"print-args" help:"Echo the parsed mapping to stderr"`
	NoColor      bool   `flag:"no-color" help:"Disable colored diagnostics"`
	Strict       bool   `flag:"strict" help:"Exit with status 2 when a warning was emitted"`
	Help         bool   `flag:"help" short:"h" help:"Show this help message"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	sink := tui.NewSink(stderr, tui.ColorEnabled(stderr))

	parsed, err := yargs.ParseFlags[cliFlags](args)
	if err != nil {
		sink.Errorf("Error: %v", err)
		fmt.Fprintf(stderr, "Try 'argslist --help' for more information\n")
		return 1
	}
	flags := parsed.Flags
	if flags.Help {
		fmt.Fprint(stdout, usage)
		return 0
	}
	if flags.NoColor {
		sink = tui.NewSink(stderr, false)
	}

	p, err := newParser(flags)
	if err != nil {
		sink.Errorf("Error: %v", err)
		return 1
	}

	tokens := append(append([]string{}, parsed.Args...), parsed.RemainingArgs...)
	res, ok := p.Parse(tokens, sink)
	if !ok {
		return 0
	}
	if err := writeResult(stdout, flags, res); err != nil {
		sink.Errorf("Error: %v", err)
		return 1
	}
	if flags.EnvFile != "" {
		if err := env.Write(flags.EnvFile, flags.EnvPrefix, res); err != nil {
			sink.Errorf("Error: %v", err)
			return 1
		}
	}
	if flags.Strict && sink.Warnings > 0 {
		return 2
	}
	return 0
}

func newParser(flags cliFlags) (*argslist.Parser, error) {
	path := flags.Schema
	if path == "" {
		path = os.Getenv(schemaEnv)
	}
	if path == "" {
		return nil, fmt.Errorf("schema required (use --schema or %s)", schemaEnv)
	}
	var format schema.Format
	if flags.SchemaFormat != "" {
		f, err := schema.ParseFormat(flags.SchemaFormat)
		if err != nil {
			return nil, err
		}
		format = f
	}
	if len(flags.Marker) != 1 {
		return nil, fmt.Errorf("marker must be a single character, got %q", flags.Marker)
	}

	descs, err := schema.Load(path, format)
	if err != nil {
		return nil, err
	}
	return argslist.New(descs, argslist.Options{
		Marker:    flags.Marker[0],
		PrintArgs: flags.PrintArgs,
	})
}

func writeResult(w io.Writer, flags cliFlags, res argslist.Result) error {
	m := map[string]any(res)
	switch flags.Format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(m)
	case "env":
		return env.Marshal(w, flags.EnvPrefix, res)
	}
	return fmt.Errorf("unknown output format %q (expected json, yaml, toml or env)", flags.Format)
}
