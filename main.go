package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/jcorbin/memcalc/internal/history"
	"github.com/jcorbin/memcalc/internal/lineinput"
	"github.com/jcorbin/memcalc/internal/logio"
)

func main() {
	os.Exit(run(context.Background()))
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func run(ctx context.Context) int {
	var (
		timeout     time.Duration
		trace       bool
		useColor    bool
		prompt      string
		historyPath string
		showHistory int
		teePath     string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&useColor, "color", isTerminal(os.Stderr), "colorize diagnostics")
	flag.StringVar(&prompt, "prompt", "> ", "prompt written before each line read from a terminal")
	flag.StringVar(&historyPath, "history", "", "record evaluated lines in a history database")
	flag.IntVar(&showHistory, "show-history", 0, "print the last `n` history entries and exit")
	flag.StringVar(&teePath, "tee", "", "copy results into a transcript file")
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)
	log.SetColor(useColor)

	// the prompt is only for interactive use, unless explicitly asked for
	promptSet := false
	flag.Visit(func(f *flag.Flag) { promptSet = promptSet || f.Name == "prompt" })
	if !promptSet && (flag.NArg() > 0 || !isTerminal(os.Stdin)) {
		prompt = ""
	}

	var hist *history.Store
	if historyPath != "" {
		var err error
		if hist, err = history.Open(historyPath); err != nil {
			log.Errorf("%v", err)
			return 1
		}
		defer hist.Close()
	}

	if showHistory != 0 {
		if hist == nil {
			log.Errorf("-show-history requires -history")
			return 2
		}
		return printHistory(&log, hist, showHistory)
	}

	var inputs []io.Reader
	for _, arg := range flag.Args() {
		if arg == "-" {
			inputs = append(inputs, lineinput.Named("stdin", os.Stdin))
			continue
		}
		f, err := os.Open(arg)
		if err != nil {
			log.Errorf("%v", err)
			for _, in := range inputs {
				if cl, ok := in.(io.Closer); ok {
					cl.Close()
				}
			}
			return 1
		}
		inputs = append(inputs, f)
	}
	if len(inputs) == 0 {
		inputs = append(inputs, lineinput.Named("stdin", os.Stdin))
	}

	var opts = []CalcOption{
		WithInput(inputs...),
		WithOutput(os.Stdout),
		WithErrorf(log.Errorf),
		WithPrompt(prompt),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if hist != nil {
		opts = append(opts, WithHistory(hist))
	}
	if teePath != "" {
		f, err := os.Create(teePath)
		if err != nil {
			log.Errorf("%v", err)
			return 1
		}
		defer f.Close()
		opts = append(opts, WithTee(f))
	}
	calc := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := calc.Run(ctx); err != nil {
		log.Errorf("%+v", err)
		return 1
	}
	return log.ExitCode()
}

func printHistory(log *logio.Logger, hist *history.Store, n int) int {
	ents, err := hist.Last(n)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	for _, ent := range ents {
		fmt.Println(ent)
	}
	return 0
}
