package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dnsoa/iprange"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	sub := os.Args[1]
	switch sub {
	case "info":
		infoCmd(os.Args[2:])
	case "contains":
		containsCmd(os.Args[2:])
	case "summarize":
		summarizeCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  iprange info      192.168.1.10/24 [...]")
	fmt.Fprintln(os.Stderr, "  iprange contains  192.168.0.0/16 192.168.10.0/24")
	fmt.Fprintln(os.Stderr, "  iprange summarize 10.0.0.3 10.0.0.40")
	fmt.Fprintln(os.Stderr, "  iprange check     -rules ./rules.yaml 1.2.3.4 [...]")
}

func infoCmd(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fatal(fmt.Errorf("info: need at least 1 range"))
	}

	for _, arg := range fs.Args() {
		r, err := iprange.Parse(arg)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("range=%s\n", r)
		fmt.Printf("family=%s prefix=%d/%d\n", r.Family(), r.Bits(), r.BitLen())
		fmt.Printf("network=%s max=%s\n", r.Addr(), r.Max().Addr())
		fmt.Printf("int=%s max_int=%s\n", r.Int(), r.MaxInt())
		fmt.Printf("bytes=%x single=%v\n", r.Bytes(), r.IsSingleIP())
	}
}

func containsCmd(args []string) {
	fs := flag.NewFlagSet("contains", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 2 {
		fatal(fmt.Errorf("contains: need 2 ranges (outer inner)"))
	}

	outer, err := iprange.Parse(fs.Arg(0))
	if err != nil {
		fatal(err)
	}
	inner, err := iprange.Parse(fs.Arg(1))
	if err != nil {
		fatal(err)
	}

	ok := outer.Contains(inner)
	fmt.Println(ok)
	if !ok {
		os.Exit(1)
	}
}

func summarizeCmd(args []string) {
	fs := flag.NewFlagSet("summarize", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 2 {
		fatal(fmt.Errorf("summarize: need 2 addresses (first last)"))
	}

	first, err := iprange.Parse(fs.Arg(0))
	if err != nil {
		fatal(err)
	}
	last, err := iprange.Parse(fs.Arg(1))
	if err != nil {
		fatal(err)
	}

	cover, err := iprange.SummarizeRange(first, last)
	if err != nil {
		fatal(err)
	}
	for _, r := range cover {
		fmt.Println(r)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
