// Package cli implements the rvg command line.
//
//	rvg                                   one float32 from (0, 1)
//	rvg -numpy int16 -l 100               symmetric limit (-100, 100)
//	rvg -numpy uint8 -l 0,10 -s 5         five values, one per line
//	rvg -schema s.yaml -type rec -params p.yaml -s 3
//
// Run returns the process exit code: 0 on success, 1 on any error.
// Advisory warnings go to stderr and do not change the exit code.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/rvg/dtype"
	"github.com/katalvlaran/rvg/ndarray"
	"github.com/katalvlaran/rvg/param"
	"github.com/katalvlaran/rvg/registry"
	"github.com/katalvlaran/rvg/rvg"
)

const usageNote = `NOTE: rvg can be run with no flags, which is equivalent to running
"rvg -numpy float32 -limits 0,1" (sampling of the uniform(0, 1) distribution).`

// options holds the parsed command line.
type options struct {
	typeName string
	samples  int
	limits   string
	schema   string
	params   string
	seed     uint64
	strict   bool
}

func newFlagSet(o *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("rvg", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.typeName, "numpy", "", "request a random value of type `DTYPE`")
	fs.StringVar(&o.typeName, "type", "", "alias of -numpy; also accepts schema type names")
	fs.IntVar(&o.samples, "s", 0, "number of `samples`, one per line (0 means a single value)")
	fs.IntVar(&o.samples, "samples", 0, "alias of -s")
	fs.StringVar(&o.limits, "l", "0,1", "`limit` m for (-m, m), or a,b for (a, b); unsigned types floor a at 0")
	fs.StringVar(&o.limits, "limits", "0,1", "alias of -l")
	fs.StringVar(&o.schema, "schema", "", "YAML `file` of named record types")
	fs.StringVar(&o.params, "params", "", "YAML parameter tree `file`; overrides -limits")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed (default: time based)")
	fs.BoolVar(&o.strict, "strict", false, "reject limits outside the type instead of clamping")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "rvg - Random Values Generator")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, usageNote)
	}

	return fs
}

// Run executes the command line args (without the program name).
func Run(args []string, stdout, stderr io.Writer) int {
	rep := newReporter(stderr)

	if len(args) == 0 {
		g, err := rvg.WithinLimits(0, 1, rvg.WithSeed(timeSeed()))
		if err == nil {
			var v ndarray.Value
			if v, err = g.Random(dtype.Float32); err == nil {
				fmt.Fprintln(stdout, ndarray.Format(v))
				return 0
			}
		}
		rep.errorf("%v", err)
		return 1
	}

	var o options
	fs := newFlagSet(&o, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() > 0 {
		rep.errorf("unexpected arguments %q", fs.Args())
		return 1
	}
	if !isSet(fs, "seed") {
		o.seed = timeSeed()
	}

	if err := run(o, stdout, rep); err != nil {
		rep.errorf("%v", err)
		return 1
	}

	return 0
}

func run(o options, stdout io.Writer, rep reporter) error {
	if o.typeName == "" {
		return errors.New("Please provide a data type")
	}
	if o.samples < 0 {
		return fmt.Errorf("argument `samples` must be a number greater or equal to 0, got %d", o.samples)
	}

	reg := registry.New()
	if o.schema != "" {
		var err error
		if reg, err = registry.LoadFile(o.schema); err != nil {
			return err
		}
	}
	d, err := reg.Lookup(o.typeName)
	if err != nil {
		if errors.Is(err, dtype.ErrUnsupportedType) && !slices.Contains(reg.Names(), o.typeName) {
			return fmt.Errorf("numpy does not have the type `%s`", o.typeName)
		}
		return err
	}

	opts := []rvg.Option{
		rvg.WithSeed(o.seed),
		rvg.WithTypeLimits(!o.strict),
		rvg.WithWarningFunc(func(w rvg.RangeWarning) { rep.warnf("%s", w) }),
	}

	var shape []int
	if o.samples > 0 {
		shape = []int{o.samples}
	}

	var v ndarray.Value
	if o.params != "" {
		v, err = generateWithParams(d, o.params, shape, opts)
	} else {
		v, err = generateWithinLimits(d, o.limits, shape, opts)
	}
	if err != nil {
		return err
	}

	return writeValues(stdout, v, o.samples)
}

func generateWithParams(d dtype.Descriptor, path string, shape []int, opts []rvg.Option) (ndarray.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading params %s: %w", path, err)
	}
	p, err := param.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("params %s: %w", path, err)
	}
	g, err := rvg.ForType(d, opts...)
	if err != nil {
		return nil, err
	}

	return g.Generate(p, shape...)
}

func generateWithinLimits(d dtype.Descriptor, limits string, shape []int, opts []rvg.Option) (ndarray.Value, error) {
	bounds, err := parseLimits(limits)
	if err != nil {
		return nil, err
	}

	var g *rvg.Generator
	if len(bounds) == 1 {
		g, err = rvg.WithinLimit(bounds[0], opts...)
	} else {
		g, err = rvg.WithinLimits(bounds[0], bounds[1], opts...)
	}
	if err != nil {
		return nil, err
	}

	return g.Random(d, shape...)
}

// parseLimits accepts "m" or "a,b".
func parseLimits(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return nil, fmt.Errorf("argument `limits` takes one or two numbers, got %q", s)
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("argument `limits`: %q is not a number", p)
		}
		out[i] = f
	}

	return out, nil
}

// writeValues writes v, or its elements one per line when samples > 0.
func writeValues(w io.Writer, v ndarray.Value, samples int) error {
	if samples == 0 {
		_, err := fmt.Fprintln(w, ndarray.Format(v))
		return err
	}
	for i := 0; i < samples; i++ {
		item, err := ndarray.Index(v, i)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w, ndarray.Format(item)); err != nil {
			return err
		}
	}

	return nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
