// Command numparse parses its arguments with each of the library's
// entry points and prints the recovered values, one per selected flag.
// A value that parses with trailing text is reported as a warning and
// still printed; any other failure aborts with a diagnostic.
package main

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"

	"github.com/spf13/pflag"

	"github.com/vimeo/numparse"
)

const bigPrec = 512

func main() {
	var (
		uintArg    = pflag.StringP("uint", "u", "", "parse an unsigned integer (auto-detected base)")
		floatArg   = pflag.StringP("float", "d", "", "parse a floating-point number")
		partArg    = pflag.StringP("part", "i", "", "parse a single real or imaginary term")
		complexArg = pflag.StringP("complex", "c", "", "parse a complex number")
		memoryArg  = pflag.StringP("memory", "m", "", "parse a memory size (default magnitude: megabytes)")
		bigFloat   = pflag.StringP("big-float", "D", "", "parse a floating-point number at 512-bit precision")
		bigComplex = pflag.StringP("big-complex", "C", "", "parse a complex number at 512-bit precision")
	)
	pflag.Parse()

	if *uintArg != "" {
		v, _, err := numparse.ParseUint(numparse.StripNonGraphic(*uintArg), 0, math.MaxUint64, 10)
		report("uint", err)
		fmt.Printf("Unsigned integer = %d\n", v)
	}

	if *floatArg != "" {
		v, _, err := numparse.ParseFloat(numparse.StripNonGraphic(*floatArg), -math.MaxFloat64, math.MaxFloat64)
		report("float", err)
		fmt.Printf("Double           = %g\n", v)
	}

	if *partArg != "" {
		var z complex128
		kind, _, err := numparse.ParsePart(&z, *partArg, numparse.ComplexMin, numparse.ComplexMax)
		report("part", err)
		switch kind {
		case numparse.KindReal:
			fmt.Printf("Complex part     = %f\n", real(z))
		case numparse.KindImaginary:
			fmt.Printf("Complex part     = %fi\n", imag(z))
		}
	}

	if *complexArg != "" {
		z, _, err := numparse.ParseComplex(*complexArg, numparse.ComplexMin, numparse.ComplexMax)
		report("complex", err)
		fmt.Printf("Complex          = %g + %gi\n", real(z), imag(z))
	}

	if *memoryArg != "" {
		v, _, err := numparse.ParseMemory(numparse.StripNonGraphic(*memoryArg), 0, math.MaxUint64, numparse.MagMega)
		report("memory", err)
		fmt.Printf("Memory           = %d bytes\n", v)
	}

	// Significant decimal digits representable at bigPrec bits
	digits := int(math.Floor(bigPrec / math.Log2(10)))

	if *bigFloat != "" {
		v, _, err := numparse.ParseBigFloat(numparse.StripNonGraphic(*bigFloat), nil, nil, 0, bigPrec, big.ToNearestEven)
		report("big-float", err)
		fmt.Printf("Big float        = %.*g\n", digits, v)
	}

	if *bigComplex != "" {
		z, _, err := numparse.ParseBigComplex(*bigComplex, nil, nil, 0, bigPrec, big.ToNearestEven)
		report("big-complex", err)
		fmt.Printf("Big complex      = %.*g + %.*gi\n", digits, z.Re, digits, z.Im)
	}
}

// report exits with a diagnostic on any hard parse failure and prints a
// warning for trailing data, matching the soft-warning treatment of
// partially parsed values.
func report(name string, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, numparse.ErrTrailing):
		fmt.Fprintf(os.Stderr, "%s: --%s: warning: argument not fully parsed\n", os.Args[0], name)
		return
	case errors.Is(err, numparse.ErrRange):
		fmt.Fprintf(os.Stderr, "%s: --%s: argument out of range\n", os.Args[0], name)
	case errors.Is(err, numparse.ErrBelowMin):
		fmt.Fprintf(os.Stderr, "%s: --%s: argument too small\n", os.Args[0], name)
	case errors.Is(err, numparse.ErrAboveMax):
		fmt.Fprintf(os.Stderr, "%s: --%s: argument too large\n", os.Args[0], name)
	case errors.Is(err, numparse.ErrBase):
		fmt.Fprintf(os.Stderr, "%s: --%s: invalid conversion base\n", os.Args[0], name)
	case errors.Is(err, numparse.ErrFormat):
		fmt.Fprintf(os.Stderr, "%s: --%s: incorrect argument format\n", os.Args[0], name)
	default:
		fmt.Fprintf(os.Stderr, "%s: --%s: unknown parse error\n", os.Args[0], name)
	}
	os.Exit(1)
}
