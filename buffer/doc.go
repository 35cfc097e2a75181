// Package buffer provides a single-owner float64 buffer type with explicit
// duplication, transfer-of-ownership, swap and release operations, plus a
// diagnostic dump and a pool for allocation-friendly reuse. Each Buffer
// exclusively owns its backing array; copies duplicate it, moves transfer it.
package buffer
