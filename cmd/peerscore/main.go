package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kingpin"
	"kastelo.dev/peerscore"
	"kastelo.dev/peerscore/excel"
)

const (
	msgUsage      = "请同时拖放Excel文件和namelist.txt到此程序上."
	msgWrongFiles = "请确保拖放了正确的Excel文件和namelist.txt文件."
	msgPrompt     = "请输入要删除的列, 用逗号分隔 (例如 A,B,C): "
	msgNotFound   = "文件未找到: %v\n"
	msgBadColumns = "列配置无效: %v\n"
	msgFailed     = "处理过程中发生错误: %v\n"
	msgSaved      = "结果已保存到 %s\n"
)

type cli struct {
	files        []string
	configPath   string
	exclude      string
	self         bool
	dropLast     bool
	averages     bool
	csv          bool
	strictRoster bool
	verbose      bool
}

func main() {
	var c cli
	app := kingpin.New("peerscore", "Summarise a peer evaluation survey export into final.xlsx.")
	app.Arg("files", "Survey spreadsheet (.xlsx) and namelist.txt, in any order").StringsVar(&c.files)
	app.Flag("config", "Configuration file (default config.json next to the program)").StringVar(&c.configPath)
	app.Flag("exclude", "Columns to drop for this run, e.g. A,B,C (not saved)").StringVar(&c.exclude)
	app.Flag("self", "First column holds the respondent name; leave out self evaluations").BoolVar(&c.self)
	app.Flag("drop-last", "Drop the last worksheet column").BoolVar(&c.dropLast)
	app.Flag("averages", "Add total and average columns").BoolVar(&c.averages)
	app.Flag("csv", "Also write final.csv").BoolVar(&c.csv)
	app.Flag("strict-roster", "Fail when rated names and the roster differ").BoolVar(&c.strictRoster)
	app.Flag("verbose", "Debug logging").Short('v').BoolVar(&c.verbose)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	os.Exit(c.run(os.Stdin, os.Stdout))
}

// run returns the process exit code. Messages for the user go to stdout.
func (c *cli) run(stdin io.Reader, stdout io.Writer) int {
	in, err := peerscore.ResolveInputs(c.files)
	if err != nil {
		slog.Debug("Unable to resolve input files", "files", c.files, "error", err)
		if len(c.files) < 2 {
			fmt.Fprintln(stdout, msgUsage)
		} else {
			fmt.Fprintln(stdout, msgWrongFiles)
		}
		return 0
	}

	exclude, err := c.columns(stdin, stdout)
	if err != nil {
		return fail(stdout, err)
	}

	if err := c.process(in, exclude); err != nil {
		return fail(stdout, err)
	}
	fmt.Fprintf(stdout, msgSaved, in.OutputPath())
	return 0
}

// columns returns the columns to exclude: the --exclude flag, else the
// stored configuration, else the answer to a prompt which is then stored.
func (c *cli) columns(stdin io.Reader, stdout io.Writer) (peerscore.ColumnSet, error) {
	if c.exclude != "" {
		return peerscore.ParseColumns(c.exclude)
	}

	path := c.configPath
	if path == "" {
		var err error
		path, err = peerscore.DefaultConfigPath()
		if err != nil {
			return peerscore.ColumnSet{}, &peerscore.Error{Kind: peerscore.KindConfig, Op: "locate config", Err: err}
		}
	}

	cfg, err := peerscore.LoadConfig(path)
	if err != nil {
		return peerscore.ColumnSet{}, err
	}
	if cfg.Configured {
		return cfg.Columns()
	}

	fmt.Fprint(stdout, msgPrompt)
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return peerscore.ColumnSet{}, &peerscore.Error{Kind: peerscore.KindConfig, Op: "read columns", Err: err}
	}
	cfg.ExcludeColumns = strings.TrimSpace(line)
	cols, err := cfg.Columns()
	if err != nil {
		return peerscore.ColumnSet{}, err
	}

	if err := peerscore.SaveConfig(path, cfg); err != nil {
		slog.Warn("Unable to save configuration", "path", path, "error", err)
	} else {
		slog.Info("Saved configuration", "path", path, "exclude", cols.String())
	}
	return cols, nil
}

func (c *cli) process(in peerscore.Inputs, exclude peerscore.ColumnSet) error {
	roster, err := peerscore.OpenRoster(in.Roster)
	if err != nil {
		return err
	}

	grid, err := excel.ReadGrid(in.Spreadsheet)
	if err != nil {
		return err
	}

	summary, err := peerscore.Run(peerscore.Options{
		Exclude:            exclude,
		DropTrailingColumn: c.dropLast,
		ExcludeSelf:        c.self,
		Averages:           c.averages,
		Logger:             slog.Default(),
	}, grid)
	if err != nil {
		return err
	}

	if summary.NonNumeric > 0 {
		slog.Warn("Non-numeric score cells counted as zero", "cells", summary.NonNumeric)
	}
	if rep := roster.Check(summary.Names()); !rep.OK() {
		if c.strictRoster {
			return &peerscore.Error{Kind: peerscore.KindData, Op: "check roster", Err: rep}
		}
		slog.Warn("Rated names differ from roster", "unknown", rep.Unknown, "missing", rep.Missing)
	}

	bs, err := excel.SummaryXLSX(summary)
	if err != nil {
		return err
	}
	if err := os.WriteFile(in.OutputPath(), bs, 0o644); err != nil {
		return err
	}

	if c.csv {
		path, err := writeCSV(filepath.Dir(in.OutputPath()), summary)
		if err != nil {
			return err
		}
		slog.Info("Wrote CSV", "path", path)
	}
	return nil
}

func fail(w io.Writer, err error) int {
	kind := peerscore.KindOf(err)
	switch kind {
	case peerscore.KindNotFound:
		fmt.Fprintf(w, msgNotFound, err)
	case peerscore.KindConfig:
		fmt.Fprintf(w, msgBadColumns, err)
	default:
		fmt.Fprintf(w, msgFailed, err)
	}
	slog.Error("Processing failed", "kind", kind.String(), "error", err)
	return 1
}
