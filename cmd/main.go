package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fig-lang/fig/fig"
	"github.com/fig-lang/fig/fig/token"
	"github.com/fig-lang/fig/fig/util"
)

var output = flag.String("o", "", "write IR to the given file instead of stdout")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: fig [-o out.ll] <file.fig>")
		os.Exit(1)
	}

	file := token.NewFile(flag.Arg(0), nil)
	if file.Err != nil {
		log.Fatal(file.Err)
	}

	module, diags := fig.Compile(file)
	if len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprint(os.Stderr, util.Pretty(file, d, 1))
		}
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(module.String()), 0644); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Print(module.String())
}
