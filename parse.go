package partsp

// Package partsp — distance-matrix parsing and validation.
//
// This is the "external collaborator" boundary from spec §1: the parser's
// only contract with the core is to deliver an immutable N×N matrix of
// non-negative finite f64 distances with a zero diagonal. Grounded on
// original_source/src/lib.rs's parse_file (line-split, whitespace-split,
// parse::<f64>()) and on tsp/validate.go's validateDistMatrix shape/value
// checking discipline (strict sentinels, no panics on user input).

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

// symTol bounds the floating-point slack allowed when checking the
// diagonal and symmetry of a parsed matrix, matching tsp/validate.go's
// symTol for the same purpose.
const symTol = 1e-12

// ParseMatrix reads a plain-text N×N distance matrix: N lines, each with N
// whitespace-separated decimal numbers, N inferred from the first
// non-empty line. It returns ErrMalformedInput if any line fails to parse
// or the matrix isn't square. It does not itself check diagonal, symmetry,
// or sign — call ValidateMatrix for that, as SolveSerial and SolveParallel
// both do internally.
func ParseMatrix(r io.Reader) (Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var rows [][]float64
	var n int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if n == 0 {
			n = len(fields)
		}
		if len(fields) != n {
			return nil, ErrMalformedInput
		}
		row := make([]float64, n)
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, ErrMalformedInput
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, ErrMalformedInput
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}
	if len(rows) != n {
		return nil, ErrMalformedInput
	}

	return Matrix(rows), nil
}

// ValidateMatrix enforces the structural invariants assumed by spec §3:
// square shape, zero diagonal, symmetry, non-negativity, and finiteness.
// SolveSerial and SolveParallel SHOULD reject non-finite entries even
// though spec §6 only says violations "need not be diagnosed" — this
// implementation diagnoses them anyway.
func ValidateMatrix(d Matrix) error {
	n := len(d)
	if n == 0 {
		return ErrEmptyMatrix
	}
	for i := 0; i < n; i++ {
		if len(d[i]) != n {
			return ErrNonSquareMatrix
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := d[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFiniteDistance
			}
			if v < 0 {
				return ErrNegativeDistance
			}
		}
		if math.Abs(d[i][i]) > symTol {
			return ErrNonZeroDiagonal
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(d[i][j]-d[j][i]) > symTol {
				return ErrAsymmetricMatrix
			}
		}
	}
	return nil
}
