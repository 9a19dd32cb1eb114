// Package mtx reads Matrix Market (.mtx) files into in-memory dense or
// sparse matrix values.
//
// What:
//
//   - FromFile / FromReader parse a full banner-led file: banner,
//     comments, size header, then a dense (array) or sparse (coordinate)
//     body, returning an MtxData value.
//   - DenseFrom* / SparseFrom* parse the bannerless "sizes-first"
//     variant, where the caller chooses the layout and the first
//     substantive line is the size header.
//   - Sparse.Densify materializes a parsed coordinate list into
//     column-major dense storage, mirroring the stored triangle for
//     symmetric data.
//
// Why:
//
//   - Matrix Market is the lingua franca for exchanging test matrices
//     (SuiteSparse, NIST collections) in plain text.
//   - Numeric pipelines want the file decoded once, strictly, with a
//     precise error for every way the input can be malformed.
//
// Format:
//
//	%%MatrixMarket matrix <coordinate|array> <field> <general|symmetric>
//	% optional comment lines
//	dim_1 ... dim_n [nnz]        nnz only for coordinate layout
//	<body>
//
// Coordinates are 1-based in the file and 0-based in parsed results.
// Dense bodies hold one value per line in column-major order.
//
// Options:
//
//   - WithNDim(n): number of index dimensions (default 2).
//   - WithFieldCheck(): reject files whose banner field tag is
//     incompatible with the caller's scalar type.
//
// Errors:
//
//   - ErrUnexpectedEOF: input exhausted before a required line.
//   - ErrBannerTruncated: banner missing or short of its five tokens.
//   - ErrHeaderTruncated: size header missing nnz, or a zero dimension.
//   - ErrLineTruncated: sparse entry line short of NDim+1 tokens.
//   - ErrUnsupportedSymmetry / ErrUnsupportedField / ErrUnsupportedLayout.
//   - ErrBadDimension / ErrBadCoordinate / ErrBadValue: token-level
//     failures, wrapped with the line number and offending token.
//
// All errors are package-level sentinels matched via errors.Is.
package mtx
