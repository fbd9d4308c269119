// Command smsparse runs the extraction engine over messages, one per line.
//
// Usage:
//
//	smsparse [flags] [file]
//
// Messages are read from file, or from stdin when no file is given. Each
// non-blank line is parsed and printed as one JSON object per line.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"sms-ledger/internal/config"
	"sms-ledger/internal/logging"
	"sms-ledger/internal/parser"
	"sms-ledger/internal/server"
	"sms-ledger/internal/services"
)

const maxLineBytes = 64 * 1024

// checkResult is the -check output line
type checkResult struct {
	Message       string `json:"message"`
	IsTransaction bool   `json:"is_transaction"`
}

type options struct {
	check      bool
	seed       uint64
	seeded     bool
	tablesFile string
	generate   int
	noise      float64
	logLevel   string
	input      string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "smsparse: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("smsparse", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.BoolVar(&opts.check, "check", false, "print only whether each message looks like a transaction")
	fs.Uint64Var(&opts.seed, "seed", 0, "seed for the confidence perturbation and the generator")
	fs.StringVar(&opts.tablesFile, "tables", "", "JSON file overriding the keyword and pattern tables")
	fs.IntVar(&opts.generate, "generate", 0, "print N synthetic bank messages instead of parsing")
	fs.Float64Var(&opts.noise, "noise", 0.2, "share of non-transaction messages produced by -generate")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level for diagnostics on stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seeded = true
		}
	})

	if fs.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	opts.input = fs.Arg(0)

	if opts.generate < 0 {
		return nil, fmt.Errorf("-generate must not be negative")
	}
	if opts.noise < 0 || opts.noise > 1 {
		return nil, fmt.Errorf("-noise must be within [0,1]")
	}

	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.generate > 0 {
		return generate(opts, stdout)
	}

	logger := logging.New(stderr, "development", opts.logLevel)
	messageParser, err := server.NewParser(config.ParserConfig{
		TablesFile: opts.tablesFile,
		RandomSeed: opts.seed,
		Seeded:     opts.seeded,
	}, logger)
	if err != nil {
		return err
	}

	input := stdin
	if opts.input != "" && opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		input = f
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	return parseLines(input, out, messageParser, opts.check)
}

func parseLines(input io.Reader, out io.Writer, messageParser *parser.Parser, check bool) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record interface{}
		if check {
			record = checkResult{Message: line, IsTransaction: messageParser.IsTransactionMessage(line)}
		} else {
			record = messageParser.Parse(line)
		}

		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func generate(opts *options, stdout io.Writer) error {
	seed := opts.seed
	if !opts.seeded {
		seed = uint64(time.Now().UnixNano())
	}

	generator := services.NewMessageGenerator(seed, services.GeneratorConfig{
		NoiseRatio:     opts.noise,
		DuplicateRatio: 0.05,
		End:            time.Now().UTC().Truncate(24 * time.Hour),
	})

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	for _, text := range services.Texts(generator.Generate(opts.generate)) {
		if _, err := fmt.Fprintln(out, text); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	}
	return nil
}
