// Command insighthub-report prints a dashboard overview of consultation feedback
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"time"

	"insighthub/internal/core/feedback"
	"insighthub/internal/core/filter"
	"insighthub/internal/core/lexicon"
	"insighthub/internal/core/sample"
	"insighthub/internal/core/version"
	"insighthub/internal/modkit"
	"insighthub/internal/platform/config"
	perr "insighthub/internal/platform/errors"
	"insighthub/internal/platform/logger"

	dashdom "insighthub/internal/services/dashboard/domain"
	dashmod "insighthub/internal/services/dashboard/module"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, clockwork.NewRealClock())
	stop()
	os.Exit(code)
}

type flags struct {
	in        string
	extended  bool
	sentiment string
	keyword   string
	format    string
	noColor   bool
	envFile   string
	version   bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fsx := flag.NewFlagSet("insighthub-report", flag.ContinueOnError)
	fsx.SetOutput(stderr)
	fsx.StringVar(&f.in, "in", "", `comments JSON file ({"comments":[...]}), "-" for stdin; empty uses the embedded sample`)
	fsx.BoolVar(&f.extended, "extended", false, "with the embedded sample, include the showcase comments")
	fsx.StringVar(&f.sentiment, "sentiment", "", "keep only positive, neutral or negative comments")
	fsx.StringVar(&f.keyword, "keyword", "", "keep comments whose text or summary contains this keyword")
	fsx.StringVar(&f.format, "format", "", "console or json (default from REPORT_FORMAT, else console)")
	fsx.BoolVar(&f.noColor, "no-color", false, "disable colored console output")
	fsx.StringVar(&f.envFile, "env", ".env", "dotenv file loaded before reading config; missing is fine")
	fsx.BoolVar(&f.version, "version", false, "print build info and exit")
	if err := fsx.Parse(args); err != nil {
		return f, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "parse flags")
	}
	if fsx.NArg() > 0 {
		return f, perr.InvalidArgf("unexpected arguments: %s", strings.Join(fsx.Args(), " "))
	}
	return f, nil
}

// run is main without process globals; it returns the exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer, clock clockwork.Clock) int {
	f, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return fail(stderr, err)
	}
	if f.version {
		fmt.Fprintln(stdout, version.Info().String())
		return 0
	}

	if err := godotenv.Load(f.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fail(stderr, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "load %s", f.envFile))
	}

	// the report owns stdout; keep routine logs quiet unless asked for
	lopt := logger.FromEnv()
	if _, set := os.LookupEnv("LOG_LEVEL"); !set {
		lopt.Level = "warn"
	}
	logger.Init(lopt)

	root := config.New()
	rc := root.Prefix("REPORT_")
	format := f.format
	if format == "" {
		format = rc.MayString("FORMAT", "console")
	}
	format = strings.ToLower(format)
	if format != "console" && format != "json" {
		return fail(stderr, perr.WithField(perr.InvalidArgf("unknown format %q", format), "format"))
	}

	l := logger.Named("report")
	now := clock.Now()

	comments, err := load(f, stdin, now)
	if err != nil {
		return fail(stderr, err)
	}

	deps := modkit.Deps{Cfg: root, Log: l, Clock: clock}
	dm, err := dashmod.New(deps, lexicon.MustDefault())
	if err != nil {
		return fail(stderr, err)
	}
	refresh := modkit.MustPortsOf[dashdom.RefreshPort](dm)
	overview := modkit.MustPortsOf[dashdom.OverviewPort](dm)

	info, err := refresh.Refresh(ctx, comments)
	if err != nil {
		return fail(stderr, err)
	}
	l.Debug().Str("snapshot_id", info.ID).Int("comments", info.Comments).Msg("report: snapshot loaded")

	ov, err := overview.Overview(ctx, filter.Criteria{
		Sentiment: feedback.Sentiment(strings.ToLower(strings.TrimSpace(f.sentiment))),
		Keyword:   f.keyword,
	})
	if err != nil {
		return fail(stderr, err)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(ov)
	default:
		err = renderConsole(stdout, ov, !f.noColor)
	}
	if err != nil {
		return fail(stderr, perr.Wrap(err, perr.ErrorCodeUnknown, "write report"))
	}
	return 0
}

// stdin is swapped by tests
var stdin io.Reader = os.Stdin

func load(f flags, in io.Reader, now time.Time) ([]feedback.Comment, error) {
	switch f.in {
	case "":
		if f.extended {
			return sample.Extended(now), nil
		}
		return sample.Comments(now), nil
	case "-":
		return feedback.Decode(in, now)
	}
	fh, err := os.Open(f.in)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, perr.WithField(perr.NotFoundf("input %s not found", f.in), "in")
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "open %s", f.in)
	}
	defer fh.Close()
	return feedback.Decode(fh, now)
}

// fail writes the error in its wire form and maps it to an exit status
func fail(stderr io.Writer, err error) int {
	b, _ := json.Marshal(map[string]perr.Wire{"error": perr.WireFrom(err)})
	fmt.Fprintln(stderr, string(b))
	return perr.Exit(err)
}
