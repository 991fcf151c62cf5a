// Command cborlens is a thin command-line façade over the CBOR core:
// decode a hex payload to diagnostic notation, dump its source map,
// or encode a JSON value to canonical CBOR hex. It is an external
// collaborator of the hard core (spec §1) — it contains no parsing or
// encoding logic of its own, only argument plumbing and formatting.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cborlens/cbor/diag"
	cbor "github.com/cborlens/cbor/runtime"
)

// CLI is the top-level kong command tree: one subcommand per
// operation named in SPEC_FULL.md §6.5.
type CLI struct {
	Verbose bool `short:"v" help:"Log operational details to stderr."`

	Decode    decodeCmd    `cmd:"" help:"Decode a hex CBOR payload and print diagnostic notation."`
	Sourcemap sourcemapCmd `cmd:"" help:"Decode a hex CBOR payload and print its source map."`
	Encode    encodeCmd    `cmd:"" help:"Encode a JSON value as canonical CBOR hex."`
	Diag      diagCmd      `cmd:"" help:"Print RFC 8949 diagnostic notation for a hex payload."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cborlens"),
		kong.Description("Inspect and build CBOR payloads."),
	)
	logger := newLogger(cli.Verbose)
	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

type decodeCmd struct {
	Hex       string `arg:"" help:"CBOR payload as a hex string."`
	Canonical bool   `help:"Reject non-canonical encodings while decoding."`
}

func (c *decodeCmd) Run(logger *slog.Logger) error {
	opts := cbor.DefaultDecodeOptions()
	opts.ValidateCanonical = c.Canonical

	res, err := cbor.DecodeInput(c.Hex, opts)
	if err != nil {
		logger.Error("decode failed", "err", err)
		return err
	}
	fmt.Println(diag.FromValue(res.Value))
	logger.Debug("decode complete", "bytes_read", res.BytesRead)
	return nil
}

type sourcemapCmd struct {
	Hex string `arg:"" help:"CBOR payload as a hex string."`
}

func (c *sourcemapCmd) Run(logger *slog.Logger) error {
	opts := cbor.DefaultDecodeOptions()
	res, err := cbor.DecodeWithSourceMapInput(c.Hex, opts)
	if err != nil {
		logger.Error("decode failed", "err", err)
		return err
	}
	for _, e := range res.SourceMap {
		path := e.Path
		if path == "" {
			path = "$"
		}
		fmt.Printf("%-24s [%d,%d) %-14s %s\n", path, e.Start, e.End, e.TypeLabel, e.ValueRepr)
	}
	return nil
}

type encodeCmd struct {
	JSON      string `arg:"" help:"JSON value to encode as CBOR."`
	Canonical bool   `default:"true" negatable:"" help:"Produce RFC 8949 deterministic encoding."`
}

func (c *encodeCmd) Run(logger *slog.Logger) error {
	var in any
	if err := json.Unmarshal([]byte(c.JSON), &in); err != nil {
		logger.Error("invalid JSON input", "err", err)
		return err
	}
	opts := cbor.EncodeOptions{
		Canonical:           c.Canonical,
		PreferShortestFloat: c.Canonical,
		StrictUTF8:          true,
	}
	res, err := cbor.EncodeInput(in, opts)
	if err != nil {
		logger.Error("encode failed", "err", err)
		return err
	}
	fmt.Println(res.Hex)
	return nil
}

type diagCmd struct {
	Hex string `arg:"" help:"CBOR payload as a hex string."`
}

func (c *diagCmd) Run(logger *slog.Logger) error {
	opts := cbor.DefaultDecodeOptions()
	b, err := cbor.HexToBytes(c.Hex)
	if err != nil {
		logger.Error("invalid hex input", "err", err)
		return err
	}
	v, _, err := cbor.Decode(b, opts)
	if err != nil {
		logger.Error("decode failed", "err", err)
		return err
	}
	fmt.Println(diag.FromValue(v))
	return nil
}
