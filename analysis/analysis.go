// Package analysis runs the statistical checks used to eyeball the frost
// hash: avalanche, collision scans, differential sweeps and timing.
package analysis

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/cryptix-network/frost"
)

// Result is the outcome of a single avalanche trial.
type Result struct {
	Original frost.Digest
	Modified frost.Digest
	DiffBits int
}

// Avalanche flips one bit of input (bit 0 is the low bit of byte 0) and
// reports how many digest bits change. The bit must fall inside input.
func Avalanche(input []byte, bit int) (Result, error) {
	if bit < 0 || bit >= 8*len(input) {
		return Result{}, errors.Errorf("avalanche: bit %d out of range for %d byte input", bit, len(input))
	}

	modified := append([]byte(nil), input...)
	modified[bit/8] ^= 1 << (uint(bit) % 8)

	a, b := frost.Hash(input), frost.Hash(modified)
	return Result{Original: a, Modified: b, DiffBits: a.DiffBits(b)}, nil
}

// Collision is a pair of suffixes that hashed to the same digest.
type Collision struct {
	I, J   int
	Digest frost.Digest
}

// Collisions hashes base with each of tries single-byte suffixes (the suffix
// is i mod 256) and returns every colliding pair with I < J. OnPair in opts
// is called once per hashed suffix.
func Collisions(ctx context.Context, base []byte, tries int, opts Options) ([]Collision, error) {
	if tries < 0 {
		return nil, errors.Errorf("collisions: negative tries %d", tries)
	}

	digests := make([]frost.Digest, tries)
	err := run(ctx, opts.Workers, tries, func(i int) {
		input := make([]byte, len(base)+1)
		copy(input, base)
		input[len(base)] = byte(i)
		digests[i] = frost.Hash(input)
		if opts.OnPair != nil {
			opts.OnPair()
		}
	})
	if err != nil {
		return nil, err
	}

	var out []Collision
	seen := make(map[frost.Digest][]int, tries)
	for j, d := range digests {
		for _, i := range seen[d] {
			out = append(out, Collision{I: i, J: j, Digest: d})
		}
		seen[d] = append(seen[d], j)
	}
	return out, nil
}

// Options control how work is spread across goroutines.
type Options struct {
	// Workers bounds the number of concurrent hash calls. Zero means
	// GOMAXPROCS.
	Workers int

	// OnPair, if set, is called once per finished pair. It may be called
	// from several goroutines at once.
	OnPair func()
}

// Stats summarizes a differential sweep.
type Stats struct {
	Total   uint64
	Pairs   uint64
	Average uint64
	Min     int
	Max     int
}

// Differential replaces every byte of base with each of the 256 byte values
// in turn and measures the bit distance to the digest of base. Pairs where
// the replacement equals the original byte count with a distance of zero.
func Differential(ctx context.Context, base []byte, opts Options) (Stats, error) {
	if len(base) == 0 {
		return Stats{}, errors.New("differential: empty input")
	}

	h := frost.Hash(base)
	dists := make([]int, 256*len(base))

	err := run(ctx, opts.Workers, len(base), func(pos int) {
		input := append([]byte(nil), base...)
		for b := 0; b < 256; b++ {
			input[pos] = byte(b)
			dists[256*pos+b] = h.DiffBits(frost.Hash(input))
			if opts.OnPair != nil {
				opts.OnPair()
			}
		}
	})
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Min: frost.Size * 8}
	for _, d := range dists {
		st.Total += uint64(d)
		if d < st.Min {
			st.Min = d
		}
		if d > st.Max {
			st.Max = d
		}
	}
	st.Pairs = uint64(len(dists))
	st.Average = st.Total / st.Pairs
	return st, nil
}

// Timing is how long one hash of Size bytes took.
type Timing struct {
	Size    int
	Elapsed time.Duration
}

// BytesPerSecond is the throughput of the timed hash.
func (t Timing) BytesPerSecond() float64 {
	if t.Elapsed <= 0 {
		return 0
	}
	return float64(t.Size) / t.Elapsed.Seconds()
}

// Speed times a single hash of each size, the input filled with fill.
func Speed(sizes []int, fill byte) []Timing {
	out := make([]Timing, 0, len(sizes))
	for _, size := range sizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = fill
		}

		start := time.Now()
		_ = frost.Hash(data)
		out = append(out, Timing{Size: size, Elapsed: time.Since(start)})
	}
	return out
}

// Determinism hashes input twice and reports a mismatch.
func Determinism(input []byte) error {
	if a, b := frost.Hash(input), frost.Hash(input); a != b {
		return errors.Errorf("determinism: %v != %v", a, b)
	}
	return nil
}

// run calls fn for every index in [0, n) on at most workers goroutines.
func run(ctx context.Context, workers, n int, fn func(int)) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "analysis")
	}
	return errors.Wrap(ctx.Err(), "analysis")
}
