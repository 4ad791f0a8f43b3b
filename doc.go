// Package gridframe converts power-grid analysis results into tabular
// dataframes for same-runtime and foreign-language consumers.
//
// The core is a generic columnar export framework: a mapper is declared
// once from an items provider and an ordered list of typed column
// extractors, then reused concurrently for the process lifetime. Each
// call flattens one result object into rows and emits fully
// materialized columns, in declaration order, to a pluggable handler.
//
// # Backends
//
// Three handler backends ship with the module:
//
//	pkg/series - in-process: typed Series values, plus Arrow record and
//	             JSON conversions
//	pkg/cabi   - cross-boundary: a stable pointer-based C struct layout
//	             with explicit ownership transfer and a paired Release
//
// # Domain mappers
//
// Ready-made mapper definitions cover security-analysis results
// (pkg/security), load-flow validation records (pkg/validation) and
// importer parameters (pkg/importer). pkg/diagram hosts the
// single-line-diagram diff collaborator.
//
// # Key packages
//
//	pkg/dataframe - column kinds, builder, mapper engine, handler contract
//	pkg/series    - in-process backend
//	pkg/cabi      - C-ABI backend
//	pkg/errors    - structured error handling
//	pkg/logger    - structured logging
//	pkg/metrics   - Prometheus metrics, including native-memory tracking
package gridframe
