// Command frost hashes files and strings with the frost hash and runs the
// avalanche, collision, speed, determinism and differential checks against
// it.
package main

import (
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"github.com/cryptix-network/frost"
)

var log = logging.Logger("frost")

var logLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Usage:   "log level (debug, info, warn, error)",
	Value:   "warn",
	EnvVars: []string{"FROST_LOG_LEVEL"},
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "frost",
		Usage: "512-bit frost hash and its self checks",
		Flags: []cli.Flag{logLevelFlag},
		Before: func(c *cli.Context) error {
			return logging.SetLogLevel("frost", c.String(logLevelFlag.Name))
		},
		Commands: []*cli.Command{
			demoCommand,
			sumCommand,
			avalancheCommand,
			collisionCommand,
			speedCommand,
			determinismCommand,
			differentialCommand,
			selftestCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "frost:", err)
		os.Exit(1)
	}
}

// printHash writes a digest the way every command reports one.
func printHash(w io.Writer, label string, input []byte, d frost.Digest) {
	fmt.Fprintf(w, "%s (%d bytes): %s\n", label, len(input), d)
}
