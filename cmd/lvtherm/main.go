// SPDX-License-Identifier: MIT

// Command lvtherm validates, simulates and generates thermal network models.
//
// Usage:
//
//	lvtherm run      [-config file] [-out dir] [-workers n] [-timeout d] [-pretty] model.json...
//	lvtherm validate [-config file] model.json...
//	lvtherm gen      [-topology chain|ring|star|grid|complete] [flags]
//
// Models are JSON ModelInput documents; "-" reads stdin. Configuration is
// read from -config, else from $LVTHERM_CONFIG, else defaults apply.
//
// Exit status: 0 on success, 1 when a model fails validation, 2 on usage
// or I/O errors.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

const usage = `usage: lvtherm <command> [flags] [model.json ...]

commands:
  run       simulate models and write ModelOutput JSON
  validate  report validation errors and topology diagnostics
  gen       generate a ModelInput fixture
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches a subcommand and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitError
	}
	env := &environment{stdin: stdin, stdout: stdout, stderr: stderr}
	switch args[0] {
	case "run":
		return cmdRun(ctx, env, args[1:])
	case "validate":
		return cmdValidate(env, args[1:])
	case "gen":
		return cmdGen(env, args[1:])
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "lvtherm: unknown command %q\n\n%s", args[0], usage)
		return exitError
	}
}
