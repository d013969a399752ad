// Command correct reads Icelandic text from a file or standard input,
// runs it through the spelling and grammar annotation pipeline, and
// prints the corrected text together with its annotations.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/grammatek/GreynirCorrect/checker"
)

const version = "1.0.0"

var cli struct {
	File     string `arg:"" optional:"" help:"Input file (default: standard input)." type:"existingfile"`
	TextOnly bool   `name:"text-only" short:"t" help:"Print only the corrected text, no annotations."`
	Stats    bool   `short:"s" help:"Print run statistics to standard error."`
	Debug    bool   `help:"Enable debug logging."`
	Version  bool   `short:"v" help:"Print version and exit."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("correct"),
		kong.Description("Icelandic spelling and grammar annotation"),
		kong.UsageOnError(),
	)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cli.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cli.Version {
		fmt.Println("correct", version)
		return
	}

	ctx.FatalIfErrorf(run())
}

func run() error {
	text, err := readInput()
	if err != nil {
		return err
	}

	c := checker.NewChecker(nil)
	res := c.Check(text)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for pi, para := range res.Paragraphs {
		if pi > 0 {
			fmt.Fprintln(out)
		}
		for _, sent := range para {
			fmt.Fprintln(out, sent.Text())
			if cli.TextOnly {
				continue
			}
			for _, ann := range sent.Annotations {
				fmt.Fprintln(out, " ", ann)
			}
		}
	}

	if cli.Stats {
		fmt.Fprintf(os.Stderr, "sentences: %d, parsed: %d, tokens: %d\n",
			res.Stats.Sentences, res.Stats.Parsed, res.Stats.Tokens)
	}
	return nil
}

func readInput() (string, error) {
	if cli.File == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(cli.File)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", cli.File, err)
	}
	return string(data), nil
}
