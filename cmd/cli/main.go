package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"resolution/internal/prover"
	"resolution/pkg/logic"
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the knowledge-base input file (.json, .yaml or .yml)")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	quietPtr := flag.Bool("quiet", false, "Suppress the per-step resolution trace; only the final verdict is written")
	flag.Parse()

	if *filePathPtr == "" {
		log.Fatal("a knowledge-base input file must be specified via the -file flag")
	}

	kb, err := logic.InputFromFile(*filePathPtr)
	if err != nil {
		log.Fatalf("cannot load knowledge base: %v", err)
	}

	out := os.Stdout
	if *outFilePathPtr != "" {
		out, err = os.Create(*outFilePathPtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer out.Close()
	}

	var tracer prover.Tracer = prover.LoggingTracer{Writer: out}
	if *quietPtr {
		tracer = prover.DefaultTracer{}
	}

	result := prover.NewProver(tracer).Prove(kb)
	fmt.Fprintln(out, result.Status)
}
