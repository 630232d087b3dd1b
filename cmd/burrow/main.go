// Command burrow reads a puzzle from stdin and prints its answer.
//
// In amphipod mode (the default) the input is a burrow diagram and the output
// is the least total energy needed to organize it, or 0 when it cannot be
// organized. In gateway mode the input is a list of "u-v" links and the output
// is the cut sequence isolating the virus, one cut per line.
//
// Input ends at EOF or at the first empty line.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/diagram"
	"github.com/katalvlaran/burrow/gateway"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

type config struct {
	mode    string
	path    bool
	unfold  bool
	verbose bool
	maxCost int64
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("burrow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.mode, "mode", "amphipod", "puzzle to solve: amphipod or gateway")
	fs.BoolVar(&c.path, "path", false, "print the optimal move sequence after the energy")
	fs.BoolVar(&c.unfold, "unfold", false, "insert the two extra rows DCBA and DBAC (depth 2 to 4)")
	fs.BoolVar(&c.verbose, "v", false, "debug logging to stderr")
	fs.Int64Var(&c.maxCost, "max-cost", 0, "give up on solutions costing more than this (0 means no limit)")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.maxCost < 0 {
		return c, fmt.Errorf("-max-cost must be non-negative, got %d", c.maxCost)
	}
	if c.mode != "amphipod" && c.mode != "gateway" {
		return c, fmt.Errorf("unknown -mode %q", c.mode)
	}

	return c, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if c.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	lines, err := readLines(stdin)
	if err != nil {
		return err
	}

	if c.mode == "gateway" {
		return runGateway(ctx, lines, log, stdout)
	}

	return runAmphipod(c, lines, log, stdout)
}

// readLines collects lines up to EOF or the first empty one.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		l := strings.TrimRight(sc.Text(), "\r")
		if l == "" {
			break
		}
		lines = append(lines, l)
	}

	return lines, sc.Err()
}

func runAmphipod(c config, lines []string, log *logrus.Logger, w io.Writer) error {
	start, err := diagram.ParseLines(lines)
	if err == nil && c.unfold {
		start, err = diagram.Unfold(start)
	}
	if err != nil {
		log.WithError(err).Warn("cannot read burrow diagram")
		_, err = fmt.Fprintln(w, 0)
		return err
	}

	opts := []burrow.Option{burrow.WithLogger(log)}
	if c.path {
		opts = append(opts, burrow.WithReturnPath())
	}
	if c.maxCost > 0 {
		opts = append(opts, burrow.WithMaxCost(c.maxCost))
	}

	res, err := burrow.Solve(start, opts...)
	if err != nil {
		fields := logrus.Fields{"depth": start.Depth()}
		if c.maxCost > 0 {
			fields["max_cost"] = humanize.Comma(c.maxCost)
		}
		log.WithFields(fields).WithError(err).Warn("no organization found")
		_, err = fmt.Fprintln(w, 0)
		return err
	}
	log.WithFields(logrus.Fields{
		"energy":   humanize.Comma(res.Cost),
		"expanded": humanize.Comma(int64(res.Expanded)),
		"pushed":   humanize.Comma(int64(res.Pushed)),
	}).Debug("burrow organized")

	if _, err := fmt.Fprintln(w, res.Cost); err != nil {
		return err
	}
	for _, m := range res.Path {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}

	return nil
}

func runGateway(ctx context.Context, lines []string, log *logrus.Logger, w io.Writer) error {
	cuts, err := gateway.Solve(lines, gateway.WithLogger(log), gateway.WithContext(ctx))
	if errors.Is(err, gateway.ErrNoCutSequence) {
		log.WithField("links", humanize.Comma(int64(len(lines)))).Warn("virus cannot be isolated")
		return nil
	}
	if err != nil {
		return err
	}
	for _, c := range cuts {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}

	return nil
}
