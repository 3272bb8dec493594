package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cryptix-network/frost"
	"github.com/cryptix-network/frost/analysis"
)

const (
	// broad band for a healthy avalanche: about half of 512 bits
	minAvalanche = 150
	maxAvalanche = 350

	determinismInput  = "determinism_test_input_data"
	determinismDigest = "c453cf3a29036c846baf76c88e20e3b0d61dc956e315c02f725ae0d46905f3a8" +
		"486724dc56a7c1091633b8c152c952d8884371a8e1ad2b90d2b76c86ba81b3ce"
)

var defaultSpeedSizes = []int{1, 16, 64, 256, 1024, 4096, 16_384, 65_536}

var avalancheCommand = &cli.Command{
	Name:  "avalanche",
	Usage: "flip one input bit and count the changed digest bits",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "input", Value: "hello world", Usage: "input to perturb"},
		&cli.IntFlag{Name: "bit", Value: 0, Usage: "bit to flip, 0 is the low bit of the first byte"},
	},
	Action: func(c *cli.Context) error {
		input := []byte(c.String("input"))
		bit := c.Int("bit")
		r, err := analysis.Avalanche(input, bit)
		if err != nil {
			return cli.Exit(err, 2)
		}
		modified := append([]byte(nil), input...)
		modified[bit/8] ^= 1 << (uint(bit) % 8)

		w := c.App.Writer
		fmt.Fprintln(w, "--- Avalanche Test ---")
		printHash(w, "Original", input, r.Original)
		printHash(w, "Modified", modified, r.Modified)
		fmt.Fprintf(w, "Differing bits: %d\n", r.DiffBits)
		return nil
	},
}

var collisionCommand = &cli.Command{
	Name:  "collision",
	Usage: "scan near-identical inputs for colliding digests",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "base", Value: "collision_test_base_string", Usage: "common prefix"},
		&cli.IntFlag{Name: "tries", Value: 200, Usage: "number of one-byte suffixes"},
		&cli.IntFlag{Name: "workers", Usage: "concurrent hash calls, 0 for GOMAXPROCS", EnvVars: []string{"FROST_WORKERS"}},
	},
	Action: func(c *cli.Context) error {
		tries := c.Int("tries")
		if tries < 0 {
			return cli.Exit("tries must not be negative", 2)
		}

		w := c.App.Writer
		fmt.Fprintln(w, "--- Collision Test ---")
		opts := analysis.Options{Workers: c.Int("workers")}
		found, err := analysis.Collisions(c.Context, []byte(c.String("base")), tries, opts)
		if err != nil {
			return err
		}
		for _, col := range found {
			fmt.Fprintf(w, "Collision found between inputs %d and %d\n", col.I, col.J)
		}
		fmt.Fprintf(w, "Total collisions in %d tries: %d\n", tries, len(found))
		return nil
	},
}

var speedCommand = &cli.Command{
	Name:  "speed",
	Usage: "time one hash per input size",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:    "size",
			Usage:   "input sizes in bytes",
			Value:   cli.NewIntSlice(defaultSpeedSizes...),
			EnvVars: []string{"FROST_SPEED_SIZES"},
		},
	},
	Action: func(c *cli.Context) error {
		sizes := c.IntSlice("size")
		for _, s := range sizes {
			if s < 0 {
				return cli.Exit(fmt.Sprintf("invalid size %d", s), 2)
			}
		}

		w := c.App.Writer
		fmt.Fprintln(w, "--- Speed Test ---")
		for _, t := range analysis.Speed(sizes, 0xaa) {
			fmt.Fprintf(w, "Input size: %6d bytes, Time: %v (%s/s)\n",
				t.Size, t.Elapsed, humanize.IBytes(uint64(t.BytesPerSecond())))
		}
		return nil
	},
}

var determinismCommand = &cli.Command{
	Name:  "determinism",
	Usage: "hash the same input twice and compare",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "input", Value: determinismInput},
	},
	Action: func(c *cli.Context) error {
		w := c.App.Writer
		fmt.Fprintln(w, "--- Determinism Test ---")
		if err := analysis.Determinism([]byte(c.String("input"))); err != nil {
			return cli.Exit(err, 1)
		}
		fmt.Fprintln(w, "Determinism test passed!")
		return nil
	},
}

var differentialCommand = &cli.Command{
	Name:  "differential",
	Usage: "replace every input byte with every value and average the changed bits",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "base", Value: "diff_test_input_data_for_hash"},
		&cli.IntFlag{Name: "workers", Usage: "concurrent hash calls, 0 for GOMAXPROCS", EnvVars: []string{"FROST_WORKERS"}},
		&cli.BoolFlag{Name: "progress", Usage: "show a progress bar on stderr"},
	},
	Action: func(c *cli.Context) error {
		base := []byte(c.String("base"))

		var bar *pb.ProgressBar
		opts := analysis.Options{Workers: c.Int("workers")}
		if c.Bool("progress") {
			bar = pb.New(256 * len(base))
			bar.Output = os.Stderr
			bar.Start()
			opts.OnPair = func() { bar.Increment() }
		}

		st, err := analysis.Differential(c.Context, base, opts)
		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return err
		}

		log.Infow("differential", "pairs", st.Pairs, "min", st.Min, "max", st.Max)
		fmt.Fprintf(c.App.Writer, "Differential test average differing bits: %d\n", st.Average)
		return nil
	},
}

var selftestCommand = &cli.Command{
	Name:  "selftest",
	Usage: "run every check and report PASS or FAIL",
	Action: func(c *cli.Context) error {
		w := c.App.Writer
		pass := color.New(color.FgGreen, color.Bold).SprintFunc()
		fail := color.New(color.FgRed, color.Bold).SprintFunc()

		failed := 0
		report := func(name string, err error) {
			if err != nil {
				failed++
				fmt.Fprintf(w, "%s %s: %v\n", fail("FAIL"), name, err)
				return
			}
			fmt.Fprintf(w, "%s %s\n", pass("PASS"), name)
		}

		report("zero blocks", checkZero())
		report("determinism", analysis.Determinism([]byte(determinismInput)))
		report("golden digest", checkGolden())
		report("avalanche", checkAvalanche())
		report("differential", checkDifferential(c))
		checkCollisions(c, w)

		if failed > 0 {
			return cli.Exit(fmt.Sprintf("%d checks failed", failed), 1)
		}
		return nil
	},
}

func checkZero() error {
	if d := frost.Hash(); !d.IsZero() {
		return errors.Errorf("got %v", d)
	}
	if frost.Hash([]byte{}).IsZero() {
		return errors.New("empty block hashed to zero")
	}
	return nil
}

func checkGolden() error {
	want, err := frost.ParseDigest(determinismDigest)
	if err != nil {
		return err
	}
	if got := frost.Hash([]byte(determinismInput)); got != want {
		return errors.Errorf("got %v want %v", got, want)
	}
	return nil
}

func checkAvalanche() error {
	r, err := analysis.Avalanche([]byte("hello world"), 0)
	if err != nil {
		return err
	}
	if r.DiffBits < minAvalanche || r.DiffBits > maxAvalanche {
		return errors.Errorf("%d differing bits outside [%d, %d]", r.DiffBits, minAvalanche, maxAvalanche)
	}
	return nil
}

func checkDifferential(c *cli.Context) error {
	st, err := analysis.Differential(c.Context, []byte("diff_test_input_data_for_hash"), analysis.Options{})
	if err != nil {
		return err
	}
	if st.Average < minAvalanche || st.Average > maxAvalanche {
		return errors.Errorf("average %d outside [%d, %d]", st.Average, minAvalanche, maxAvalanche)
	}
	return nil
}

// collisions are not a failure: nothing is proven about the hash
func checkCollisions(c *cli.Context, w io.Writer) {
	found, err := analysis.Collisions(c.Context, []byte("collision_test_base_string"), 200, analysis.Options{})
	if err != nil {
		log.Errorf("collision scan: %s", err)
		return
	}
	for _, col := range found {
		log.Warnf("collision between inputs %d and %d", col.I, col.J)
	}
	fmt.Fprintf(w, "%s collisions: %d in 200 tries\n", color.YellowString("INFO"), len(found))
}
