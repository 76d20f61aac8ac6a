package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/cppeffects/internal/cppast"
	"github.com/standardbeagle/cppeffects/internal/effects"
	"github.com/standardbeagle/cppeffects/internal/report"
	"github.com/standardbeagle/cppeffects/internal/source"
	"github.com/standardbeagle/cppeffects/internal/version"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "cppeffects",
		Usage:   "Scan a C++ source file for side-effect expressions",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "The C++ file to scan",
				Required: true,
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	path := c.String("file")

	src, err := source.Load(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("cppeffects: %v", err), 1)
	}

	parser, err := cppast.NewParser()
	if err != nil {
		return cli.Exit(fmt.Sprintf("cppeffects: %v", err), 1)
	}
	defer parser.Close()

	tu, err := parser.Parse(src)
	if err != nil {
		return cli.Exit(fmt.Sprintf("cppeffects: failed to parse %s: %v", path, err), 1)
	}
	defer tu.Close()

	results := effects.NewScanner(src).ScanFile(tu)
	if err := report.NewFormatter(c.App.Writer).Write(results); err != nil {
		return cli.Exit(fmt.Sprintf("cppeffects: %v", err), 1)
	}
	return nil
}
