package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/cryptix-network/frost"
)

var demoInputs = [][]byte{
	[]byte(""),
	[]byte("short"),
	[]byte("some medium length data"),
	[]byte("this is a longer input data to test the hash function with multiple rounds"),
	make([]byte, 1000),
}

var demoCommand = &cli.Command{
	Name:  "demo",
	Usage: "hash the sample inputs and time one large input",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "big-size",
			Usage:   "size in bytes of the timed input",
			Value:   10_000_000,
			EnvVars: []string{"FROST_BIG_SIZE"},
		},
	},
	Action: func(c *cli.Context) error {
		size := c.Int("big-size")
		if size < 0 {
			return cli.Exit("big-size must not be negative", 2)
		}

		w := c.App.Writer
		fmt.Fprintln(w, "=== Cryptix Frost Hash ===")
		fmt.Fprintln(w, "=== Serial Hashes ===")
		for i, input := range demoInputs {
			printHash(w, fmt.Sprintf("Input %d", i), input, frost.Hash(input))
		}

		big := bytes.Repeat([]byte{0x55}, size)
		start := time.Now()
		_ = frost.Hash(big)
		elapsed := time.Since(start)

		log.Debugw("timed large input", "size", size, "elapsed", elapsed)
		fmt.Fprintf(w, "Hash time for %s: %v\n", humanize.Bytes(uint64(size)), elapsed)
		return nil
	},
}
