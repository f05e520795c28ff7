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
	"strings"

	"github.com/peterh/liner"

	"github.com/hololang/holo"
	// import for side effects
	_ "github.com/hololang/holo/coreext"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		source     = flag.String("e", "", "evaluate source and exit")
		debug      = flag.Bool("debug", false, "trace every evaluation step")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad log level:", err)
		os.Exit(2)
	}

	a := holo.NewActor()
	a.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	a.SetDebug(cfg.Debug)
	root := a.NewBox()

	if *source == "" && flag.NArg() == 0 {
		repl(a, root, cfg)
		return
	}
	for _, file := range flag.Args() {
		b, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if _, err := run(a, root, string(b)); err != nil {
			fmt.Fprintf(os.Stderr, "%s:%v\n", file, err)
			os.Exit(1)
		}
	}
	if *source != "" {
		r, err := run(a, root, *source)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(a.Format(r))
	}
}

// run evaluates source against root. An interrupt cancels the evaluation.
func run(a *holo.Actor, root *holo.Box, source string) (*holo.Box, error) {
	e, err := holo.ParseExpression(source)
	if err != nil {
		return nil, err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return a.EvaluateContext(ctx, root, e)
}

func repl(a *holo.Actor, root *holo.Box, cfg Config) {
	fmt.Printf("holo on %s; :quit to exit\n", platform())
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := cfg.HistoryPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		src, ok := readStatement(ln, cfg.Prompt, cfg.Continuation)
		if !ok {
			fmt.Println()
			return
		}
		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit":
			return
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		r, err := run(a, root, src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(a.Format(r))
	}
}

// readStatement reads lines until they parse or fail for a reason other than
// ending early.
func readStatement(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl-C abandons the statement.
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		_, err = holo.Parse(src)
		var pe *holo.ParseError
		if errors.As(err, &pe) && pe.Incomplete {
			continue
		}
		return src, true
	}
}
