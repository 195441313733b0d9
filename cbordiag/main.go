package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	nanocbor "github.com/nanocbor/nanocbor.go/decoder"
)

// CLI defines the cbordiag command-line interface.
//
// We deliberately keep it minimal:
//   - input: a file of CBOR bytes (or hex text with --hex); stdin when omitted
//   - validate: check well-formedness only, print nothing on success
//   - sequence: accept a CBOR sequence (RFC 8742) instead of a single item
type CLI struct {
	Input    string `arg:"" optional:"" help:"Input file (defaults to stdin)"`
	Hex      bool   `short:"x" help:"Treat input as hex text (whitespace ignored)"`
	Validate bool   `short:"c" help:"Validate well-formedness only"`
	Sequence bool   `short:"s" help:"Accept a sequence of items instead of a single item"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cbordiag"),
		kong.Description("Validate CBOR data and render RFC 8949 diagnostic notation."),
	)

	if err := run(&cli, os.Stdout); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI, out io.Writer) error {
	data, err := readInput(cli.Input)
	if err != nil {
		return err
	}
	if cli.Hex {
		data, err = decodeHexText(data)
		if err != nil {
			return err
		}
	}

	if cli.Validate {
		if cli.Sequence {
			return nanocbor.WellFormedSequence(data)
		}
		return nanocbor.WellFormed(data)
	}

	for first := true; len(data) > 0; first = false {
		if !first && !cli.Sequence {
			return nanocbor.ErrTrailingBytes
		}
		line, rest, err := nanocbor.Diag(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, line)
		data = rest
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// decodeHexText decodes hex digits from b, skipping all whitespace.
func decodeHexText(b []byte) ([]byte, error) {
	s := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, string(b))
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex input: %w", err)
	}
	return out, nil
}
