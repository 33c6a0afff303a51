package calc

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	bignum "github.com/shabbyrobe/go-bignum"
)

// VerifyOptions controls a Verify run.
type VerifyOptions struct {
	Bits    int
	Iter    int // random cases per op
	Workers int
	Seed    int64 // 0 picks one from the clock

	// Ops restricts the run to these operators; empty means all of Ops.
	Ops []string
}

// Mismatch records one case where bignum and math/big disagreed. Got and
// Want hold the result's hex value(s) followed by the overflow flag.
type Mismatch struct {
	Op   string
	A, B string
	Got  string
	Want string
}

// MismatchError is returned by Verify when at least one case disagreed.
type MismatchError struct {
	Mismatches []Mismatch
}

func (e *MismatchError) Error() string {
	m := e.Mismatches[0]
	return fmt.Sprintf("calc: %d mismatches, first: %s %s %s: got %s, want %s",
		len(e.Mismatches), m.A, m.Op, m.B, m.Got, m.Want)
}

// Report summarises a Verify run.
type Report struct {
	Seed       int64
	Cases      int64
	Mismatches []Mismatch
	Duration   time.Duration
}

// Verify runs opts.Iter random cases for each op at the chosen width,
// comparing every result and overflow flag against math/big. The cases are
// split across opts.Workers goroutines, each with its own RNG derived from
// the seed. Mismatches are logged as they are found; if there were any,
// the returned error is a *MismatchError.
func Verify(ctx context.Context, log zerolog.Logger, opts VerifyOptions) (Report, error) {
	switch opts.Bits {
	case 32:
		return verify[bignum.L32](ctx, log, opts)
	case 64:
		return verify[bignum.L64](ctx, log, opts)
	case 128:
		return verify[bignum.L128](ctx, log, opts)
	case 256:
		return verify[bignum.L256](ctx, log, opts)
	case 512:
		return verify[bignum.L512](ctx, log, opts)
	case 1024:
		return verify[bignum.L1024](ctx, log, opts)
	case 2048:
		return verify[bignum.L2048](ctx, log, opts)
	case 4096:
		return verify[bignum.L4096](ctx, log, opts)
	default:
		return Report{}, fmt.Errorf("calc: unsupported width %d", opts.Bits)
	}
}

func verify[L bignum.Limbs](ctx context.Context, log zerolog.Logger, opts VerifyOptions) (rep Report, err error) {
	ops := opts.Ops
	if len(ops) == 0 {
		ops = Ops
	}
	for _, op := range ops {
		if !knownOp(op) {
			return rep, fmt.Errorf("calc: unknown op %q", op)
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	rep.Seed = opts.Seed
	if rep.Seed == 0 {
		rep.Seed = time.Now().UnixNano()
	}

	log = log.With().Int("bits", opts.Bits).Int64("seed", rep.Seed).Logger()
	log.Info().Int("workers", workers).Int("iter", opts.Iter).Strs("ops", ops).Msg("verify started")
	start := time.Now()

	var cases atomic.Int64
	found := make([][]Mismatch, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		// The first Iter%workers workers pick up one extra iteration.
		n := opts.Iter / workers
		if w < opts.Iter%workers {
			n++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewSource(rep.Seed + int64(w)))
			ch := newChecker[L](rng)
			for i := 0; i < n; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for _, op := range ops {
					if m, ok := ch.check(op); !ok {
						log.Error().Str("op", m.Op).Str("a", m.A).Str("b", m.B).
							Str("got", m.Got).Str("want", m.Want).Msg("mismatch")
						found[w] = append(found[w], m)
					}
					cases.Add(1)
				}
			}
			log.Debug().Int("worker", w).Int("iter", n).Msg("worker done")
			return nil
		})
	}

	err = g.Wait()
	rep.Cases = cases.Load()
	rep.Duration = time.Since(start)
	for _, f := range found {
		rep.Mismatches = append(rep.Mismatches, f...)
	}
	if err != nil {
		return rep, err
	}

	log.Info().Int64("cases", rep.Cases).Int("mismatches", len(rep.Mismatches)).
		Dur("elapsed", rep.Duration).Msg("verify finished")
	if len(rep.Mismatches) > 0 {
		return rep, &MismatchError{Mismatches: rep.Mismatches}
	}
	return rep, nil
}

func knownOp(op string) bool {
	for _, o := range Ops {
		if o == op {
			return true
		}
	}
	return false
}

// checker generates operands and checks one op against math/big. It is not
// safe for concurrent use; each worker owns one.
type checker[L bignum.Limbs] struct {
	rng  *rand.Rand
	bits int
	wrap *big.Int // 1 << bits
	a, b *big.Int
	want *big.Int
}

func newChecker[L bignum.Limbs](rng *rand.Rand) *checker[L] {
	bits := bignum.Uint[L]{}.Bits()
	return &checker[L]{
		rng:  rng,
		bits: bits,
		wrap: new(big.Int).Lsh(big.NewInt(1), uint(bits)),
		a:    new(big.Int),
		b:    new(big.Int),
		want: new(big.Int),
	}
}

// operand returns a random value, usually with some of the top bits
// cleared so that short operands are well represented.
func (c *checker[L]) operand() bignum.Uint[L] {
	u := bignum.Rand[L](c.rng)
	switch c.rng.Intn(4) {
	case 0:
	case 1:
		u = u.Rsh(uint(c.bits - c.rng.Intn(33)))
	default:
		u = u.Rsh(uint(c.rng.Intn(c.bits)))
	}
	return u
}

// wrapped reduces v modulo 1<<bits and reports whether that changed it.
func (c *checker[L]) wrapped(v *big.Int) (overflow bool) {
	overflow = v.Sign() < 0 || v.Cmp(c.wrap) >= 0
	v.Mod(v, c.wrap)
	return overflow
}

func (c *checker[L]) check(op string) (m Mismatch, ok bool) {
	a, b := c.operand(), c.operand()
	if c.rng.Intn(8) == 0 {
		b = a
	}
	a.IntoBigInt(c.a)
	b.IntoBigInt(c.b)

	m = Mismatch{Op: op, A: a.Hex(), B: b.Hex()}

	var got bignum.Uint[L]
	var gotOver, wantOver bool
	var got2 *bignum.Uint[L]
	var want2 *big.Int

	switch op {
	case "+":
		got, gotOver = a.Add(b)
		wantOver = c.wrapped(c.want.Add(c.a, c.b))
	case "-":
		got, gotOver = a.Sub(b)
		wantOver = c.wrapped(c.want.Sub(c.a, c.b))
	case "*":
		got, gotOver = a.Mul(b)
		wantOver = c.wrapped(c.want.Mul(c.a, c.b))
	case "/", "%", "/%":
		if b.IsZero() {
			b, _ = b.Inc()
			c.b.SetInt64(1)
			m.B = b.Hex()
		}
		q, r := a.QuoRem(b)
		rem := new(big.Int)
		c.want.QuoRem(c.a, c.b, rem)
		switch op {
		case "/":
			got = q
		case "%":
			got = r
			c.want.Set(rem)
		default:
			got, got2, want2 = q, &r, rem
		}
	case "&":
		got = a.And(b)
		c.want.And(c.a, c.b)
	case "|":
		got = a.Or(b)
		c.want.Or(c.a, c.b)
	case "^":
		got = a.Xor(b)
		c.want.Xor(c.a, c.b)
	case "&^":
		got = a.AndNot(b)
		c.want.AndNot(c.a, c.b)
	case "<<", ">>":
		n := uint(c.rng.Intn(c.bits + 8))
		m.B = fmt.Sprint(n)
		if op == "<<" {
			got = a.Lsh(n)
			c.wrapped(c.want.Lsh(c.a, n))
		} else {
			got = a.Rsh(n)
			c.want.Rsh(c.a, n)
		}
	case "cmp":
		m.Got = fmt.Sprint(a.Cmp(b))
		m.Want = fmt.Sprint(c.a.Cmp(c.b))
		return m, m.Got == m.Want
	case "inc":
		got, gotOver = a.Inc()
		wantOver = c.wrapped(c.want.Add(c.a, big.NewInt(1)))
	case "dec":
		got, gotOver = a.Dec()
		wantOver = c.wrapped(c.want.Sub(c.a, big.NewInt(1)))
	default:
		panic(fmt.Errorf("calc: unknown op %q", op))
	}

	m.Got = got.Hex()
	m.Want = c.want.Text(16)
	if got2 != nil {
		m.Got += " " + got2.Hex()
		m.Want += " " + want2.Text(16)
	}
	m.Got += fmt.Sprintf(" overflow=%v", gotOver)
	m.Want += fmt.Sprintf(" overflow=%v", wantOver)
	return m, m.Got == m.Want
}
