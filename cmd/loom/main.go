package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/loomui/loom/style"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            "loom",
		Usage:           "inspection tooling for loom style sheets and themes",
		Version:         version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "verbose logging"},
			&cli.StringFlag{Name: "theme", Aliases: []string{"t"}, Usage: "load theme from `FILE` (TOML) for $name references"},
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Parses sheet file(s) and reports every bad declaration",
				Action:    checkSheets,
				ArgsUsage: "FILE...",
			},
			{
				Name:      "dump",
				Usage:     "Parses sheet file(s) and prints the resolved rules",
				Action:    dumpSheets,
				ArgsUsage: "FILE...",
			},
			{
				Name:      "theme",
				Usage:     "Prints a theme's palette; without a file, the built-in day and night themes",
				Action:    showTheme,
				ArgsUsage: "[FILE]",
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func buildLogger(cmd *cli.Command) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !cmd.Bool("debug") {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func loadTheme(cmd *cli.Command) (*style.Theme, error) {
	path := cmd.String("theme")
	if path == "" {
		return style.Day(), nil
	}
	return style.LoadTheme(path)
}

func checkSheets(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("no sheet files given")
	}
	log, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	theme, err := loadTheme(cmd)
	if err != nil {
		return err
	}

	parser := style.NewParser(log)
	var bad error
	for _, name := range cmd.Args().Slice() {
		data, err := os.ReadFile(name)
		if err != nil {
			bad = multierr.Append(bad, err)
			continue
		}
		sheet, err := parser.Parse(data, theme)
		if err != nil {
			bad = multierr.Append(bad, fmt.Errorf("%s: %w", name, err))
			continue
		}
		fmt.Printf("%s: %d rules\n", name, sheet.Len())
	}
	return bad
}

func dumpSheets(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("no sheet files given")
	}
	log, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	theme, err := loadTheme(cmd)
	if err != nil {
		return err
	}

	parser := style.NewParser(log)
	for _, name := range cmd.Args().Slice() {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		// Bad declarations are reported but the surviving rules still
		// print, same as the engine would load them.
		sheet, perr := parser.Parse(data, theme)
		for _, e := range multierr.Errors(perr) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, e)
		}
		for _, r := range sheet.Rules() {
			sp := r.Selector.Specificity()
			fmt.Printf("%s {  /* specificity %d,%d */\n", r.Selector, sp.Class, sp.Tag)
			for _, at := range r.Attributes {
				if at.Transition != nil {
					fmt.Printf("\t%s: %s transition(%gs);\n", at.Key, at.Value, at.Transition.Duration)
				} else {
					fmt.Printf("\t%s: %s;\n", at.Key, at.Value)
				}
			}
			fmt.Println("}")
		}
	}
	return nil
}

func showTheme(_ context.Context, cmd *cli.Command) error {
	themes := []*style.Theme{style.Day(), style.Night()}
	if cmd.NArg() > 0 {
		themes = themes[:0]
		for _, name := range cmd.Args().Slice() {
			t, err := style.LoadTheme(name)
			if err != nil {
				return err
			}
			themes = append(themes, t)
		}
	}
	for _, t := range themes {
		fmt.Printf("theme %q\n", t.Name())
		for _, name := range t.Colors() {
			v, _ := t.Lookup(name)
			fmt.Printf("\tcolor  %-12s %s\n", name, v)
		}
		for _, name := range t.Lengths() {
			v, _ := t.Lookup(name)
			fmt.Printf("\tlength %-12s %s\n", name, v)
		}
	}
	return nil
}
