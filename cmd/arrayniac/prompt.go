package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var errDeclined = errors.New("not overwriting existing file")

type prompter struct {
	in    *bufio.Reader
	out   io.Writer
	color *color.Color
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	c := color.New(color.FgYellow, color.Bold)
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return &prompter{in: bufio.NewReader(in), out: out, color: c}
}

// confirm asks message until the answer is a single y or n. End of input declines.
func (p *prompter) confirm(message string) (bool, error) {
	for {
		if _, err := p.color.Fprintf(p.out, "%s [y/n]: ", message); err != nil {
			return false, err
		}

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}

		switch strings.TrimSpace(line) {
		case "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		}

		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(p.out)
			return false, nil
		}
	}
}

// checkOverwrite asks before any existing path is replaced unless force is set.
func (p *prompter) checkOverwrite(force bool, paths ...string) error {
	if force {
		return nil
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}

			return err
		}

		ok, err := p.confirm(fmt.Sprintf("Output file %s already exists. Do you want to override?", path))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", errDeclined, path)
		}
	}

	return nil
}
