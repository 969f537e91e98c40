package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"vortsolvo/internal/wordlist"
)

func main() {
	var (
		inputFile  = flag.String("input", "", "Input file path")
		outputFile = flag.String("output", "", "Output file path (may equal input)")
		fileType   = flag.String("type", "", "Input format (txt or encoded)")
	)
	flag.Parse()

	if *inputFile == "" || *outputFile == "" || *fileType == "" {
		log.Fatal("Usage: go run ./cmd/wordlist -input=<file> -output=<file> -type=<txt|encoded>")
	}

	input, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	words, err := convert(strings.ToLower(*fileType), input)
	if err != nil {
		log.Fatalf("Failed to convert %s: %v", *inputFile, err)
	}

	if err := os.MkdirAll(filepath.Dir(*outputFile), 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	if err := wordlist.WriteJSON(f, words); err != nil {
		f.Close()
		log.Fatalf("Failed to write output file: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close output file: %v", err)
	}

	fmt.Printf("Converted %d words: %s -> %s\n", len(words), *inputFile, *outputFile)
}

// convert decodes input of the given format into a list of words.
func convert(fileType string, input []byte) ([]string, error) {
	switch fileType {
	case "txt":
		return wordlist.FromText(bytes.NewReader(input))
	case "encoded":
		return wordlist.DecodeJSON(input)
	default:
		return nil, fmt.Errorf("unsupported file type: %s (supported: txt, encoded)", fileType)
	}
}
