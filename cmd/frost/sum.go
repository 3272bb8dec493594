package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/cryptix-network/frost"
)

var sumCommand = &cli.Command{
	Name:      "sum",
	Usage:     "print or check frost digests; each file is hashed as one block",
	ArgsUsage: "PATH...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "string",
			Usage: "treat arguments as literal strings instead of paths",
		},
		&cli.BoolFlag{
			Name:  "check",
			Usage: "read '<digest>  <path>' lines from the arguments and verify them",
		},
		&cli.IntFlag{
			Name:    "jobs",
			Usage:   "number of files hashed at once",
			Value:   runtime.GOMAXPROCS(0),
			EnvVars: []string{"FROST_JOBS"},
		},
	},
	Action: func(c *cli.Context) error {
		args := c.Args().Slice()
		w := c.App.Writer

		switch {
		case c.Bool("string"):
			for _, s := range args {
				fmt.Fprintf(w, "%s  %q\n", frost.Hash([]byte(s)), s)
			}
			return nil
		case c.Bool("check"):
			return checkSums(c.Context, w, args, c.Int("jobs"))
		}

		if len(args) == 0 {
			d, err := hashReader(os.Stdin)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s  -\n", d)
			return nil
		}

		paths, err := collectPaths(args)
		results, herr := hashFiles(c.Context, paths, c.Int("jobs"))
		for _, r := range results {
			if r.err == nil {
				fmt.Fprintf(w, "%s  %s\n", r.digest, r.path)
			}
		}
		if err = multierror.Append(err, herr).ErrorOrNil(); err != nil {
			return cli.Exit(err, 1)
		}
		return nil
	},
}

type fileResult struct {
	path   string
	digest frost.Digest
	err    error
}

// collectPaths expands directories into the regular files below them. Paths
// that cannot be walked are reported without stopping the rest.
func collectPaths(args []string) (paths []string, errs error) {
	for _, arg := range args {
		err := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				errs = multierror.Append(errs, errors.Wrapf(err, "walk %s", path))
				return nil
			}
			if d.Type().IsRegular() {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return paths, errs
}

func hashReader(r io.Reader) (frost.Digest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return frost.Digest{}, errors.Wrap(err, "read")
	}
	return frost.Hash(data), nil
}

func hashFile(path string) (frost.Digest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return frost.Digest{}, errors.Wrapf(err, "hash %s", path)
	}
	return frost.Hash(data), nil
}

// hashFiles hashes paths on at most jobs goroutines, keeping the input order
// in the results. If ctx is done before every path is hashed, no results are
// returned.
func hashFiles(ctx context.Context, paths []string, jobs int) ([]fileResult, error) {
	if jobs <= 0 {
		jobs = 1
	}

	results := make([]fileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := hashFile(path)
			results[i] = fileResult{path: path, digest: d, err: err}
			log.Debugw("hashed", "path", path, "err", err)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "hash files")
	}

	var errs error
	for _, r := range results {
		if r.err != nil {
			errs = multierror.Append(errs, r.err)
		}
	}
	return results, errs
}

type sumLine struct {
	digest frost.Digest
	path   string
}

func parseSumLine(line string) (sumLine, error) {
	hexPart, path, ok := strings.Cut(line, "  ")
	if !ok {
		return sumLine{}, errors.Errorf("malformed line %q", line)
	}
	d, err := frost.ParseDigest(hexPart)
	if err != nil {
		return sumLine{}, errors.Wrapf(err, "line %q", line)
	}
	return sumLine{digest: d, path: path}, nil
}

func readSumFile(name string) (lines []sumLine, errs error) {
	fh, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "check")
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		line, err := parseSumLine(text)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrap(err, name))
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, name))
	}
	return lines, errs
}

func checkSums(ctx context.Context, w io.Writer, files []string, jobs int) error {
	var errs error
	var want []sumLine
	for _, name := range files {
		lines, err := readSumFile(name)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		want = append(want, lines...)
	}

	paths := make([]string, len(want))
	for i, l := range want {
		paths[i] = l.path
	}

	results, err := hashFiles(ctx, paths, jobs)
	if err != nil {
		errs = multierror.Append(errs, err)
	}

	failed := 0
	for i, r := range results {
		switch {
		case r.err != nil:
			fmt.Fprintf(w, "%s: FAILED open or read\n", r.path)
			failed++
		case r.digest != want[i].digest:
			fmt.Fprintf(w, "%s: FAILED\n", r.path)
			failed++
		default:
			fmt.Fprintf(w, "%s: OK\n", r.path)
		}
	}
	if failed > 0 {
		log.Warnf("%d of %d computed digests did not match", failed, len(results))
		errs = multierror.Append(errs, errors.Errorf("%d digests did not match", failed))
	}
	if errs != nil {
		return cli.Exit(errs, 1)
	}
	return nil
}
