// Command sszdump inspects raw SSZ byte streams: "decode" splits a list of
// variable-size elements by its offset table, validating the framing, and
// prints the hex of each element; "root" prints the hash tree root of the
// input bytes packed into chunks.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/eth2030/ssz/internal/log"
	"github.com/eth2030/ssz/ssz"
)

var logFormatFlag = &cli.StringFlag{
	Name:  "log-format",
	Usage: "log output format: json, text, or color",
	Value: "json",
}

func main() {
	app := &cli.App{
		Name:  "sszdump",
		Usage: "inspect raw SSZ-encoded byte streams",
		Flags: []cli.Flag{logFormatFlag},
		Before: func(c *cli.Context) error {
			return applyLogFormat(c.String("log-format"))
		},
		Commands: []*cli.Command{
			decodeCommand,
			rootCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error("sszdump failed", "error", err)
		os.Exit(1)
	}
}

// applyLogFormat swaps the default logger's formatter per --log-format.
// "json" keeps the default slog JSON handler; "text"/"color" switch to the
// LogFormatter-backed handler in internal/log/formatter.go.
func applyLogFormat(format string) error {
	switch format {
	case "", "json":
		return nil
	case "text":
		log.SetDefault(log.NewWithFormatter(&log.TextFormatter{}, log.INFO, os.Stderr))
	case "color":
		log.SetDefault(log.NewWithFormatter(&log.ColorFormatter{}, log.INFO, os.Stderr))
	default:
		return fmt.Errorf("sszdump: unknown --log-format %q", format)
	}
	return nil
}

var inputFlag = &cli.StringFlag{
	Name:     "hex",
	Usage:    "hex-encoded SSZ payload, 0x-prefixed",
	Required: true,
}

var decodeCommand = &cli.Command{
	Name:  "decode",
	Usage: "decode a ByteList-framed offset table and print each element's hex",
	Flags: []cli.Flag{inputFlag, &cli.IntFlag{Name: "nmax", Usage: "max element count", Value: 0}},
	Action: func(c *cli.Context) error {
		data, err := hexutil.Decode(c.String("hex"))
		if err != nil {
			return fmt.Errorf("sszdump: decode hex input: %w", err)
		}
		elements, err := ssz.UnmarshalListOfVariable(data, c.Int("nmax"))
		if err != nil {
			logDecodeError(err)
			return err
		}
		for i, e := range elements {
			fmt.Printf("element[%d] = %s\n", i, hexutil.Encode(e))
		}
		return nil
	},
}

var rootCommand = &cli.Command{
	Name:  "root",
	Usage: "compute the hash tree root of a packed basic-type byte string",
	Flags: []cli.Flag{inputFlag},
	Action: func(c *cli.Context) error {
		data, err := hexutil.Decode(c.String("hex"))
		if err != nil {
			return fmt.Errorf("sszdump: decode hex input: %w", err)
		}
		chunks := ssz.Pack(data)
		root := ssz.MerkleizeCached(chunks, 0)
		fmt.Println(hexutil.Encode(root[:]))
		return nil
	},
}

func logDecodeError(err error) {
	if de, ok := err.(*ssz.DeserializeError); ok {
		log.Error("decode failed", slog.String("kind", de.Kind.String()), slog.String("field", de.Field), slog.Int("offset", de.Offset))
		return
	}
	log.Error("decode failed", "error", err)
}
