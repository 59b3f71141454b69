// Package lablath is a small batch of numeric command-line utilities built
// around a dense integer matrix core.
//
// What is in the box:
//
//   - matrix/     — fixed-shape dense integer matrices, shape validators,
//     Multiply (i→j→k) and Convolve (2-D cross-correlation, no flip, no padding)
//   - matrixtext/ — the two-block text format: rows of whitespace-separated
//     integers, one separator line between the two matrices
//   - pipeline/   — file-to-file driver: read → decode → validate → compute →
//     encode → atomic write
//   - config/     — defaults, YAML file and LABLATH_* environment overrides
//   - logging/    — zap logger to stderr
//   - bubble/, pascal/ — the sort and triangle peers
//   - cmd/lablath — the cobra command line
//
// Quick example (input.txt):
//
//	1 2
//	3 4
//
//	5 6
//	7 8
//
//	$ lablath multiply -i input.txt -o output.txt
//	output.txt
//	$ cat output.txt
//	19 22
//	43 50
//
//	go install github.com/katalvlaran/lablath/cmd/lablath@latest
package lablath
