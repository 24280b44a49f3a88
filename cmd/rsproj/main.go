// Command rsproj reprojects coordinates read from standard input.
//
// Each input line holds "<x> <y> [<z>]"; the transformed coordinates
// are written to standard output in the same layout.
//
//	echo "15.4213696 47.0766716" | rsproj -to "+proj=laea +lat_0=52 +lon_0=10"
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/3liz/proj4rs"
)

var (
	from    = flag.String("from", "+proj=latlong", "source projection")
	to      = flag.String("to", "", "destination projection (required)")
	inverse = flag.Bool("inverse", false, "perform the inverse projection")
	verbose = flag.Bool("v", false, "increase verbosity")
)

func main() {
	flag.Parse()
	if *to == "" {
		fmt.Fprintln(os.Stderr, "rsproj: missing required -to projection")
		flag.Usage()
		os.Exit(2)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "rsproj:", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	srcDefn, dstDefn := *from, *to
	if *inverse {
		srcDefn, dstDefn = dstDefn, srcDefn
	}
	logger.Debug("projections",
		zap.String("from", srcDefn),
		zap.String("to", dstDefn),
		zap.Bool("inverse", *inverse),
	)

	trans, err := proj4rs.NewTransformDef(srcDefn, dstDefn)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rsproj:", err)
		os.Exit(1)
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			fmt.Fprintf(os.Stderr, "rsproj: expecting '<x> <y> [<z>]', found: %q\n", line)
			os.Exit(1)
		}

		coords := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				fmt.Fprintln(os.Stderr, "rsproj:", err)
				os.Exit(1)
			}
			coords[i] = v
		}

		var z any
		if len(coords) == 3 {
			z = coords[2]
		}
		x, y, zOut, err := trans.Transform(coords[0], coords[1], z)
		if err != nil {
			fmt.Fprintln(os.Stderr, "rsproj:", err)
			os.Exit(1)
		}

		if zOut != nil {
			fmt.Printf("%.6f %.6f %.6f\n", x, y, zOut)
		} else {
			fmt.Printf("%.6f %.6f\n", x, y)
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "rsproj:", err)
		os.Exit(1)
	}
}
