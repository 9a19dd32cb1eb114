// Package mtxio reads Matrix Market (.mtx) files — the plain-text
// interchange format used by SuiteSparse, NIST and most sparse-matrix
// collections — into in-memory Go values.
//
// 🚀 What is mtxio?
//
//	A small, strict parsing library that brings together:
//		• Banner handling: layout (coordinate/array) + symmetry detection
//		• Comment & blank-line transparency before the header and inside the body
//		• Size headers: dimensions plus declared non-zero count
//		• Dense bodies: column-major value lists, one scalar per line
//		• Sparse bodies: 1-based coordinate entries, stored 0-based
//		• A precise sentinel-error taxonomy for every malformed input
//
// ✨ Why choose mtxio?
//
//   - Generic over the scalar – parse into int, float64, or any supported numeric type
//   - No partial results – a parse either completes or fails with one sentinel
//   - Pure Go – no cgo, no hidden deps
//   - Errors carry context – line numbers and offending tokens, matched via errors.Is
//
// Everything lives under one subpackage:
//
//	mtx/ — banner, header and body parsers, the Dense/Sparse value
//	       types, options (WithNDim, WithFieldCheck) and Densify
//
// Quick example:
//
//	data, err := mtx.FromFile[float64]("bcsstk01.mtx")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if sp, ok := data.(*mtx.Sparse[float64]); ok {
//		fmt.Println(sp.Shape(), sp.NNZ(), sp.Symmetry())
//	}
//
// Dive into the mtx package docs for the full format contract and
// error set.
//
//	go get github.com/katalvlaran/mtxio/mtx
package mtxio
