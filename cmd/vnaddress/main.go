// Command vnaddress checks Vietnamese provinces and wards against the
// embedded address dataset or a dataset file.
//
//	vnaddress [-dataset path] [-env-file path] [-lang tag] <command> [args]
//
// Commands:
//
//	provinces                 list every province
//	wards <province>          list the wards of a province
//	province <name>           check a province name
//	pair <province> <ward>    check that a ward belongs to a province
//	text <input>              check that input uses only address characters
//	check <province> <ward>   run the full form validation and print localized field errors
//
// Exit status is 0 when the input is valid, 1 when it is not and 2 on usage
// or dataset load errors.
//
// Without -dataset the embedded sample is used. It lists every province but
// only some of their wards, so real wards can be reported as invalid.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/vnaddress/pkg/address"
	"github.com/dmitrymomot/vnaddress/pkg/config"
	"github.com/dmitrymomot/vnaddress/pkg/i18n"
	"github.com/dmitrymomot/vnaddress/pkg/logger"
	"github.com/dmitrymomot/vnaddress/pkg/validator"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vnaddress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataset := fs.String("dataset", "", "path to a complete JSON or YAML dataset (defaults to $VNADDRESS_DATASET, then the embedded sample)")
	envFile := fs.String("env-file", "", "optional .env file to load before reading the environment")
	lang := fs.String("lang", "", "language of validation messages (defaults to $VNADDRESS_LANG, then en)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: vnaddress [flags] provinces | wards <province> | province <name> | pair <province> <ward> | text <input> | check <province> <ward>")
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nThe embedded dataset lists every province but only a sample of wards.\nPass -dataset with the complete ward list for production checks.")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitValid
		}
		return exitUsage
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	log := logger.New(append(cfg.LoggerOptions("vnaddress"), logger.WithOutput(stderr))...)

	if *dataset == "" {
		*dataset = cfg.Dataset
	}
	if *lang == "" {
		*lang = cfg.Lang
	}

	cmd := fs.Args()
	if len(cmd) == 0 {
		fs.Usage()
		return exitUsage
	}

	db, err := openDatabase(ctx, *dataset, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to load address dataset", logger.Dataset(datasetLabel(*dataset)), logger.Error(err))
		return exitUsage
	}

	tr, err := i18n.Embedded(ctx, i18n.WithLogger(log.With(logger.Component("i18n"))))
	if err != nil {
		log.ErrorContext(ctx, "failed to load translations", logger.Error(err))
		return exitUsage
	}

	c := &cli{
		db:     db,
		tr:     tr,
		lang:   *lang,
		log:    log.With(logger.Component("cli")),
		stdout: stdout,
		stderr: stderr,
	}
	switch name, rest := cmd[0], cmd[1:]; {
	case name == "provinces" && len(rest) == 0:
		return c.provinces()
	case name == "wards" && len(rest) == 1:
		return c.wards(rest[0])
	case name == "province" && len(rest) == 1:
		return c.province(rest[0])
	case name == "pair" && len(rest) == 2:
		return c.pair(rest[0], rest[1])
	case name == "text" && len(rest) == 1:
		return c.text(rest[0])
	case name == "check" && len(rest) == 2:
		return c.check(rest[0], rest[1])
	default:
		fs.Usage()
		return exitUsage
	}
}

// datasetLabel names the dataset in log records.
func datasetLabel(path string) string {
	if path == "" {
		return address.EmbeddedSource
	}
	return path
}

func openDatabase(ctx context.Context, path string, log *slog.Logger) (*address.Database, error) {
	opts := []address.Option{address.WithLogger(log.With(logger.Component("address")))}
	if path == "" {
		return address.Embedded(ctx, opts...)
	}
	return address.LoadFile(ctx, path, opts...)
}

type cli struct {
	db     *address.Database
	tr     *i18n.Translator
	lang   string
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func (c *cli) provinces() int {
	for _, name := range c.db.Provinces() {
		fmt.Fprintln(c.stdout, name)
	}
	return exitValid
}

func (c *cli) wards(province string) int {
	wards, ok := c.db.Wards(province)
	if !ok {
		fmt.Fprintf(c.stderr, "unknown province %q\n", province)
		return exitInvalid
	}
	for _, name := range wards {
		fmt.Fprintln(c.stdout, name)
	}
	return exitValid
}

func (c *cli) province(name string) int {
	canonical, ok := c.db.CanonicalProvince(name)
	c.log.Debug("province checked", logger.Province(name), logger.Valid(ok))
	if !ok {
		fmt.Fprintln(c.stdout, "invalid")
		return exitInvalid
	}
	fmt.Fprintln(c.stdout, canonical)
	return exitValid
}

func (c *cli) pair(province, ward string) int {
	p, w, ok := c.db.CanonicalWard(province, ward)
	c.log.Debug("address pair checked", logger.Province(province), logger.Ward(ward), logger.Valid(ok))
	if !ok {
		fmt.Fprintln(c.stdout, "invalid")
		return exitInvalid
	}
	fmt.Fprintf(c.stdout, "%s, %s\n", w, p)
	return exitValid
}

func (c *cli) text(input string) int {
	if !address.IsValidCharacters(input) {
		fmt.Fprintln(c.stdout, "invalid")
		return exitInvalid
	}
	fmt.Fprintln(c.stdout, "valid")
	return exitValid
}

func (c *cli) check(province, ward string) int {
	err := validator.Apply(validator.AddressRules(c.db, "province", "ward", province, ward)...)
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		fmt.Fprintln(c.stdout, "valid")
		return exitValid
	}
	for _, e := range verrs {
		fmt.Fprintf(c.stdout, "%s: %s\n", e.Field, e.Translate(c.tr, c.lang))
	}
	return exitInvalid
}
