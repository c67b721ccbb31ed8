package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resolution/internal/prover"
	"resolution/pkg/logic"

	"github.com/samber/lo"
)

type TestMetadata struct {
	Name       string
	Predicates int
	Clauses    int
	HasGoal    bool
}

type BenchmarkResult struct {
	Test     TestMetadata
	Status   prover.Status
	Rounds   int
	Steps    int
	Clauses  int
	Duration time.Duration
}

func main() {
	directoryPtr := flag.String("dir", "test", "Directory containing the knowledge-base input files to benchmark")
	flag.Parse()

	tests := getTests(*directoryPtr)
	results := make([]BenchmarkResult, 0, len(tests))

	for _, test := range tests {
		fmt.Printf("Benchmarking knowledge base \"%v\"\n", test.Name)
		results = append(results, measure(test))
	}

	printTable(results)
}

func getTests(directory string) []TestMetadata {
	testFiles, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	tests := make([]TestMetadata, 0, len(testFiles))
	for _, file := range testFiles {
		filename := filepath.Join(directory, file.Name())
		kb, err := logic.InputFromFile(filename)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}

		tests = append(tests, TestMetadata{
			Name:       filename,
			Predicates: len(kb.Predicates),
			Clauses:    len(kb.Clauses),
			HasGoal:    kb.Goal != nil,
		})
	}
	return tests
}

func measure(test TestMetadata) BenchmarkResult {
	kb, err := logic.InputFromFile(test.Name)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	start := time.Now()
	result := prover.NewProver(nil).Prove(kb)
	duration := time.Since(start)

	return BenchmarkResult{
		Test:     test,
		Status:   result.Status,
		Rounds:   result.Rounds,
		Steps:    result.Steps,
		Clauses:  result.Clauses,
		Duration: duration,
	}
}

func printTable(results []BenchmarkResult) {
	nameWidth := lo.Max(lo.Map(results, func(r BenchmarkResult, _ int) int { return len(r.Test.Name) }))
	if nameWidth < len("Knowledge base") {
		nameWidth = len("Knowledge base")
	}

	fmt.Printf("%-*v  %-10v  %6v  %6v  %7v  %10v\n", nameWidth, "Knowledge base", "Verdict", "Rounds", "Steps", "Clauses", "Duration")
	fmt.Println(strings.Repeat("-", nameWidth+2+10+2+6+2+6+2+7+2+10))
	for _, result := range results {
		fmt.Printf("%-*v  %-10v  %6d  %6d  %7d  %10v\n",
			nameWidth, result.Test.Name, result.Status, result.Rounds, result.Steps, result.Clauses, formatDuration(result.Duration))
	}
}

func formatDuration(duration time.Duration) string {
	milliseconds := duration.Milliseconds()
	return fmt.Sprintf("%d.%03ds", milliseconds/1000, milliseconds%1000)
}
