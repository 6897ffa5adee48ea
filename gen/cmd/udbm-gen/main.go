// Command udbm-gen drives the gen package's random generators from the
// command line, for ad-hoc property-based exploration outside go test.
// It is a thin CLI, not a library: the generators themselves live in the
// gen package and are what property-based tests import directly.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/federation"
	"github.com/zonelib/udbm/gen"
)

func main() {
	app := cli.NewApp()
	app.Name = "udbm-gen"
	app.Usage = "generate random zones, federations and priced zones"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "dim", Value: 3, Usage: "number of clocks, including the reference clock"},
		cli.IntFlag{Name: "members", Value: 1, Usage: "number of federation members (0 generates a single zone)"},
		cli.IntFlag{Name: "range", Value: 20, Usage: "approximate magnitude of generated bounds"},
		cli.Int64Flag{Name: "seed", Value: 1, Usage: "random seed, for reproducible output"},
		cli.BoolFlag{Name: "cost", Usage: "with --members 0, also generate a random rate vector and print its infimum"},
		cli.IntFlag{Name: "max-rate", Value: 5, Usage: "maximum magnitude of a generated rate, with --cost"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "udbm-gen:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	dim := c.Int("dim")
	if dim < 1 {
		return errors.New("--dim must be >= 1")
	}
	rng := rand.New(rand.NewSource(c.Int64("seed")))
	opts := []gen.Option{gen.WithRange(int32(c.Int("range"))), gen.WithSource(rng)}

	members := c.Int("members")
	if members <= 0 {
		d, err := gen.RandomDBM(dim, opts...)
		if err != nil {
			return errors.Wrap(err, "generating zone")
		}
		printZone(d)
		if c.Bool("cost") {
			return printCost(d, int32(c.Int("max-rate")), rng)
		}
		return nil
	}

	f, err := gen.RandomFederation(dim, members, opts...)
	if err != nil {
		return errors.Wrap(err, "generating federation")
	}
	fmt.Printf("federation with %d member(s) before reduction\n", f.Size())
	f.MergeReduce(0, federation.Restricted)
	fmt.Printf("federation with %d member(s) after merge-reduce\n", f.Size())
	return nil
}

// printZone prints every finite bound in a zone as "xi - xj <= v" (or "<"),
// skipping the diagonal and unconstrained (infinity) entries.
func printZone(d *dbm.DBM) {
	dim := d.Dim()
	fmt.Printf("zone, dim=%d\n", dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue
			}
			b := d.At(i, j)
			if b.IsInfinity() {
				continue
			}
			v, strict := b.Decode()
			op := "<="
			if strict {
				op = "<"
			}
			fmt.Printf("  x%d - x%d %s %d\n", i, j, op, v)
		}
	}
}

func printCost(d *dbm.DBM, maxRate int32, rng *rand.Rand) error {
	p, err := gen.RandomCost(d, maxRate, 10, gen.WithSource(rng))
	if err != nil {
		return errors.Wrap(err, "generating cost")
	}
	inf, err := p.Infimum()
	if err != nil {
		return errors.Wrap(err, "computing infimum")
	}
	fmt.Printf("rates=%v offset=%d infimum=%d\n", p.Rates(), p.Offset(), inf)
	return nil
}
