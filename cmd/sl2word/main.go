// Command sl2word evaluates a word in a two-generator matrix representation
// parameterized by a complex value z, and reports the resulting matrix, its
// trace and its dominant eigenpair.
//
// Usage:
//
//	sl2word -precision 64 -x 2 -y 0 -word ab
//	sl2word -precision 256 -random-z -random-word 12 -seed 7
//	sl2word -precision 64 -x 2 -y 0 -rational 2/3
//
// Exactly one word mode (-word, -random-word, -rational) and one parameter
// mode (-x/-y or -random-z) must be selected; conflicts and omissions are
// fatal input errors reported before any arbitrary-precision work starts.
// The rational p/q with q = 0 denotes Infinity. Results go to stdout;
// diagnostics (including the precision-insufficiency warning) go to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/ogaral/sl2word/apcx"
	"github.com/ogaral/sl2word/mobius"
	"github.com/ogaral/sl2word/rep"
	"github.com/ogaral/sl2word/xrat"
)

// exit codes: 2 for input/usage errors, 1 for domain errors during the
// computation (apcomplex-CLI convention).
const (
	exitUsage  = 2
	exitDomain = 1
)

func main() {
	var (
		precision  = flag.Uint("precision", 0, "bit precision for all complex arithmetic (required, positive)")
		x          = flag.Float64("x", 0, "real part of the parameter z")
		y          = flag.Float64("y", 0, "imaginary part of the parameter z")
		randomZ    = flag.Bool("random-z", false, "draw the parameter z uniformly from [0,1)×[0,1)")
		word       = flag.String("word", "", "explicit word over the alphabet {a,b,A,B}")
		randomWord = flag.Int("random-word", -1, "evaluate a uniform random word of this length")
		rational   = flag.String("rational", "", "locate the word of the rational p/q in the Stern-Brocot tree (q=0 means Infinity)")
		seed       = flag.Int64("seed", rep.DefaultRNGSeed, "deterministic RNG seed for the random modes")
		digits     = flag.Int("digits", 0, "significant digits to print (default: derived from -precision)")
	)
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelInfo,
	}))

	// Track explicitly provided flags; a zero value is a legal input for
	// -x/-y and -word, so presence matters, not content.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *precision == 0 {
		fail(logger, exitUsage, "a positive -precision is required")
	}

	zGiven := set["x"] || set["y"]
	if zGiven == *randomZ {
		fail(logger, exitUsage, "exactly one of -x/-y or -random-z must be provided")
	}

	modes := 0
	for _, on := range []bool{set["word"], set["random-word"], set["rational"]} {
		if on {
			modes++
		}
	}
	if modes != 1 {
		fail(logger, exitUsage, "exactly one of -word, -random-word, -rational must be provided")
	}

	var target xrat.Extended
	if set["rational"] {
		var err error
		if target, err = parseRational(*rational); err != nil {
			fail(logger, exitUsage, "invalid -rational", "value", *rational, "err", err)
		}
	}

	// Input is validated; arbitrary-precision work starts here.
	rng := rep.RNGFromSeed(*seed)

	z := apcx.New(*precision, *x, *y)
	if *randomZ {
		z = apcx.New(*precision, rng.Float64(), rng.Float64())
	}

	r, err := rep.NewRep(*precision, z)
	if err != nil {
		fail(logger, exitDomain, "cannot build generators", "z", z.String(), "err", err)
	}

	var m mobius.Matrix
	switch {
	case set["word"]:
		w, perr := rep.ParseWord(*word)
		if perr != nil {
			fail(logger, exitUsage, "invalid -word", "value", *word, "err", perr)
		}
		if m, err = r.Word(w); err != nil {
			fail(logger, exitDomain, "cannot evaluate word", "word", *word, "err", err)
		}
	case set["random-word"]:
		var w rep.Word
		if m, w, err = r.RandomWord(*randomWord, rng); err != nil {
			fail(logger, exitDomain, "cannot evaluate random word", "length", *randomWord, "err", err)
		}
		logger.Info("sampled word", "word", w.String(), "seed", *seed)
	default:
		if m, err = r.Rational(target); err != nil {
			fail(logger, exitDomain, "cannot locate rational", "target", target.String(), "err", err)
		}
	}

	d := *digits
	if d <= 0 {
		d = apcx.DigitsForPrec(*precision)
	}

	fmt.Printf("%s %s\n%s %s\n", m.A.Text(d), m.B.Text(d), m.C.Text(d), m.D.Text(d))
	fmt.Printf("trace = %s\n", m.Trace().Text(d))

	res, err := rep.Analyze(m)
	if err != nil {
		if errors.Is(err, mobius.ErrEigenvectorDegenerate) {
			// Soft signal: the matrix and trace above are still valid.
			logger.Warn("dominant eigenvector is degenerate at this precision, increase -precision")
			return
		}
		fail(logger, exitDomain, "cannot analyze result", "err", err)
	}
	if !res.PrecisionOK {
		logger.Warn("output is not very close to an eigenvector, increase -precision")
	}

	fmt.Printf("dominant_eigenvalue = %s\n", res.Eigen.Value.Text(d))
	fmt.Printf("dominant_eigenvector = %s %s\n", res.Eigen.Vector[0].Text(d), res.Eigen.Vector[1].Text(d))
}

// parseRational parses "p/q" (or a bare "p", meaning p/1) with unsigned
// components; q = 0 denotes Infinity.
func parseRational(s string) (xrat.Extended, error) {
	ps, qs, found := strings.Cut(s, "/")
	if !found {
		qs = "1"
	}

	p, err := strconv.ParseUint(strings.TrimSpace(ps), 10, 64)
	if err != nil {
		return xrat.Extended{}, fmt.Errorf("numerator: %w", err)
	}
	q, err := strconv.ParseUint(strings.TrimSpace(qs), 10, 64)
	if err != nil {
		return xrat.Extended{}, fmt.Errorf("denominator: %w", err)
	}

	return xrat.FromInts(p, q), nil
}

// fail logs one error line and terminates with the given exit code.
func fail(logger *slog.Logger, code int, msg string, args ...any) {
	logger.Error(msg, args...)
	os.Exit(code)
}
