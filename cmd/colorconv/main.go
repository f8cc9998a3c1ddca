// colorconv converts colors between legacy HTML strings and the terminal
// color identifiers used by the chat rendering layer
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"

	"git.sr.ht/~dkasak/palette"
)

func main() {
	var (
		toHTML  bool
		line    bool
		verbose bool
	)
	flag.BoolVar(&toHTML, "to-html", false, "convert a terminal color to its #rrggbb value")
	flag.BoolVar(&line, "line", false, "convert a 0-99 line color code to a terminal color")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: "15:04:05.000",
		}))
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Print("Enter color: ")
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Scan()
		args = []string{scanner.Text()}
	}

	for _, arg := range args {
		out, err := convert(arg, toHTML, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Debug("converted", "input", arg, "output", out)
		fmt.Println(out)
	}
}

func convert(arg string, toHTML, line bool) (string, error) {
	switch {
	case line:
		return palette.LineColorToTerminal(arg)
	case toHTML:
		return palette.TerminalColorToHTML(arg)
	default:
		return palette.HTMLColorToTerminal(arg), nil
	}
}
