// Command bncalc evaluates fixed-width bignum expressions and cross-checks
// the bignum package against math/big.
//
//	bncalc eval [flags] <a> <op> <b>
//	bncalc eval [flags] <a> inc|dec
//	bncalc verify [flags]
//	bncalc sizes
//
// Operands are hex. Shift counts are decimal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/shabbyrobe/go-bignum/internal/calc"
	"github.com/shabbyrobe/go-bignum/internal/config"
	"github.com/shabbyrobe/go-bignum/internal/logging"
)

const (
	exitSuccess  = 0
	exitError    = 1
	exitUsage    = 2
	exitMismatch = 3
	exitConfig   = 4
	exitCanceled = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: bncalc eval|verify|sizes [flags] [args]")
	fmt.Fprintln(w, "ops:  ", strings.Join(calc.Ops, " "))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "sizes":
		for _, b := range config.Bits {
			fmt.Fprintf(stdout, "u%d\t%d limbs\n", b, b/32)
		}
		return exitSuccess

	case "eval", "verify":
		cfg, err := config.Parse(cmd, args, stderr)
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		} else if config.IsConfigError(err) {
			fmt.Fprintln(stderr, "bncalc:", err)
			return exitConfig
		} else if err != nil {
			fmt.Fprintln(stderr, "bncalc:", err)
			return exitError
		}
		if cmd == "eval" {
			return runEval(cfg, stdout, stderr)
		}
		return runVerify(ctx, cfg, stdout, stderr)

	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitSuccess

	default:
		fmt.Fprintf(stderr, "bncalc: unknown command %q\n", cmd)
		usage(stderr)
		return exitUsage
	}
}

func runEval(cfg config.Config, stdout, stderr io.Writer) int {
	var a, op, b string
	switch {
	case len(cfg.Args) == 2 && calc.Unary(cfg.Args[1]):
		a, op = cfg.Args[0], cfg.Args[1]
	case len(cfg.Args) == 3 && !calc.Unary(cfg.Args[1]):
		a, op, b = cfg.Args[0], cfg.Args[1], cfg.Args[2]
	default:
		fmt.Fprintln(stderr, "bncalc: eval expects <a> <op> <b>, or <a> inc|dec")
		return exitUsage
	}

	res, err := calc.Eval(cfg.Bits, a, op, b)
	if err != nil {
		fmt.Fprintln(stderr, "bncalc:", err)
		return exitError
	}
	fmt.Fprintln(stdout, res)
	return exitSuccess
}

func runVerify(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) int {
	log, err := logging.New(stderr, logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	if err != nil {
		fmt.Fprintln(stderr, "bncalc:", err)
		return exitConfig
	}

	rep, err := calc.Verify(ctx, log, calc.VerifyOptions{
		Bits:    cfg.Bits,
		Iter:    cfg.Iter,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
		Ops:     cfg.Args,
	})

	var mismatch *calc.MismatchError
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "ok: %d cases, u%d, seed %d, %s\n", rep.Cases, cfg.Bits, rep.Seed, rep.Duration)
		return exitSuccess
	case errors.As(err, &mismatch):
		fmt.Fprintf(stdout, "FAIL: %d of %d cases mismatched, u%d, seed %d\n",
			len(mismatch.Mismatches), rep.Cases, cfg.Bits, rep.Seed)
		return exitMismatch
	case errors.Is(err, context.Canceled):
		log.Warn().Int64("cases", rep.Cases).Msg("verify canceled")
		return exitCanceled
	default:
		log.Error().Err(err).Msg("verify failed")
		return exitError
	}
}
