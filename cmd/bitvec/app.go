package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/codec"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// runner carries state shared by all commands of one App.
type runner struct {
	log *bitvec.Logger
}

func newApp() *cli.App {
	r := &runner{log: bitvec.NoopLogger()}

	return &cli.App{
		Name:    "bitvec",
		Usage:   "inspect, encode and combine integer sets",
		Version: "dev",
		Flags:   appFlags,
		Before:  r.setupLogging,
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "print statistics for a set read from args or stdin",
				ArgsUsage: "[values...]",
				Action:    r.info,
			},
			{
				Name:      "encode",
				Usage:     "encode a set (binary output is hex)",
				ArgsUsage: "[values...]",
				Flags:     []cli.Flag{formatFlag},
				Action:    r.encode,
			},
			{
				Name:      "decode",
				Usage:     "decode a set and print its members",
				ArgsUsage: "<data>",
				Flags:     []cli.Flag{formatFlag},
				Action:    r.decode,
			},
			{
				Name:        "op",
				Usage:       "apply a set operation to two sets",
				Subcommands: r.opCommands(),
			},
			{
				Name:        "range",
				Usage:       "add or remove an inclusive range of members",
				Subcommands: r.rangeCommands(),
			},
		},
	}
}

func (r *runner) setupLogging(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String(logLevelFlag.Name))); err != nil {
		return errors.Wrapf(err, "invalid --%s", logLevelFlag.Name)
	}

	opts := &slog.HandlerOptions{Level: level}
	w := c.App.ErrWriter

	switch format := c.String(logFormatFlag.Name); format {
	case "text":
		r.log = bitvec.NewLogger(slog.NewTextHandler(w, opts))
	case "json":
		r.log = bitvec.NewLogger(slog.NewJSONHandler(w, opts))
	default:
		return errors.Errorf("unknown log format %s", format)
	}
	return nil
}

// readSet parses members from args, or from stdin when args is empty.
// Unparseable tokens are logged and skipped.
func (r *runner) readSet(c *cli.Context, args []string) (*bitvec.Bitset, error) {
	text := strings.Join(args, " ")
	if len(args) == 0 && c.App.Reader != nil {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		text = string(data)
	}
	return r.parse(c.Context, text), nil
}

func (r *runner) parse(ctx context.Context, text string) *bitvec.Bitset {
	b, err := bitvec.Parse(text)
	r.log.LogParse(ctx, b.Count(), err)
	return b
}

func (r *runner) info(c *cli.Context) error {
	b, err := r.readSet(c, c.Args().Slice())
	if err != nil {
		return err
	}

	w := c.App.Writer
	s := b.Stats()

	fmt.Fprintf(w, "count:    %s\n", humanize.Comma(int64(s.Count)))
	if first, ok := b.First(); ok {
		last, _ := b.Last()
		fmt.Fprintf(w, "first:    %d\n", first)
		fmt.Fprintf(w, "last:     %d\n", last)
	}
	fmt.Fprintf(w, "words:    %d (capacity %d)\n", s.WordCount, s.Capacity)
	fmt.Fprintf(w, "memory:   %s\n", humanize.IBytes(uint64(s.MemoryUsage)))
	fmt.Fprintf(w, "density:  %.4f\n", s.Density())
	fmt.Fprintf(w, "kernel:   %s\n", s.Kernel)
	fmt.Fprintf(w, "members:  %s\n", b)
	fmt.Fprintf(w, "hex:      %s\n", hex.EncodeToString(b.Bytes()))
	return nil
}

func lookupCodec(c *cli.Context) (codec.Codec, error) {
	name := c.String(formatFlag.Name)
	cd, ok := codec.ByName(name)
	if !ok {
		return nil, errors.Errorf("unknown format %q (want one of %s)", name, strings.Join(codec.Names(), ", "))
	}
	return cd, nil
}

func (r *runner) encode(c *cli.Context) error {
	cd, err := lookupCodec(c)
	if err != nil {
		return err
	}

	b, err := r.readSet(c, c.Args().Slice())
	if err != nil {
		return err
	}

	data, err := cd.Marshal(b)
	if err != nil {
		return errors.Wrapf(err, "encode %s", cd.Name())
	}

	if cd.Name() == "binary" {
		fmt.Fprintln(c.App.Writer, hex.EncodeToString(data))
	} else {
		fmt.Fprintln(c.App.Writer, string(data))
	}
	return nil
}

func (r *runner) decode(c *cli.Context) error {
	cd, err := lookupCodec(c)
	if err != nil {
		return err
	}

	if c.NArg() != 1 {
		return errors.New("decode expects exactly one <data> argument")
	}

	data := []byte(c.Args().First())
	if cd.Name() == "binary" {
		if data, err = hex.DecodeString(string(data)); err != nil {
			return errors.Wrap(err, "decode hex")
		}
	}

	b := bitvec.New()
	if err := cd.Unmarshal(data, b); err != nil {
		return errors.Wrapf(err, "decode %s", cd.Name())
	}

	r.log.WithCount(b.Count()).DebugContext(c.Context, "decoded set", "format", cd.Name())

	members := make([]string, 0, b.Count())
	for v := range b.All() {
		members = append(members, fmt.Sprint(v))
	}
	fmt.Fprintln(c.App.Writer, strings.Join(members, " "))
	return nil
}

// setOp pairs a pure operator with its count-only form.
type setOp struct {
	name  string
	usage string
	apply func(a, b *bitvec.Bitset) *bitvec.Bitset
	count func(a, b *bitvec.Bitset) int
}

var setOps = []setOp{
	{"union", "members in either set", (*bitvec.Bitset).Union, (*bitvec.Bitset).UnionCount},
	{"intersection", "members in both sets", (*bitvec.Bitset).Intersection, (*bitvec.Bitset).IntersectionCount},
	{"difference", "members of left not in right", (*bitvec.Bitset).Difference, (*bitvec.Bitset).DifferenceCount},
	{"xor", "members in exactly one set", (*bitvec.Bitset).SymmetricDifference, (*bitvec.Bitset).SymmetricDifferenceCount},
}

func (r *runner) opCommands() []*cli.Command {
	cmds := make([]*cli.Command, 0, len(setOps))
	for _, op := range setOps {
		cmds = append(cmds, &cli.Command{
			Name:   op.name,
			Usage:  op.usage,
			Flags:  []cli.Flag{leftFlag, rightFlag},
			Action: func(c *cli.Context) error { return r.runOp(c, op) },
		})
	}
	return cmds
}

func (r *runner) runOp(c *cli.Context, op setOp) error {
	left := r.parse(c.Context, c.String(leftFlag.Name))
	right := r.parse(c.Context, c.String(rightFlag.Name))

	result := op.apply(left, right)
	count := op.count(left, right)
	r.log.LogAlgebra(c.Context, op.name, left.Count(), right.Count(), count)

	fmt.Fprintf(c.App.Writer, "result: %s\n", result)
	fmt.Fprintf(c.App.Writer, "count:  %d\n", count)
	return nil
}

func (r *runner) rangeCommands() []*cli.Command {
	ops := []struct {
		name  string
		usage string
		apply func(b *bitvec.Bitset, start, end uint) error
	}{
		{"add", "add every member in [start, end]", (*bitvec.Bitset).AddRange},
		{"remove", "remove every member in [start, end]", (*bitvec.Bitset).RemoveRange},
	}

	cmds := make([]*cli.Command, 0, len(ops))
	for _, op := range ops {
		cmds = append(cmds, &cli.Command{
			Name:      op.name,
			Usage:     op.usage,
			ArgsUsage: "[values...]",
			Flags:     []cli.Flag{startFlag, endFlag},
			Action: func(c *cli.Context) error {
				b, err := r.readSet(c, c.Args().Slice())
				if err != nil {
					return err
				}

				start, end := c.Uint(startFlag.Name), c.Uint(endFlag.Name)
				err = op.apply(b, start, end)
				r.log.LogRange(c.Context, op.name, start, end, err)
				if err != nil {
					return errors.Wrapf(err, "range %s", op.name)
				}

				fmt.Fprintln(c.App.Writer, b)
				return nil
			},
		})
	}
	return cmds
}
