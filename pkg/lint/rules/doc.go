// Package rules contains the built-in front-matter rule catalogue.
//
// Rules are pattern scans over the raw lines of a front-matter block. Each
// rule registers itself with the default registry during init(); rule IDs
// (FM001..FM012) fix the evaluation order so diagnostics are deterministic.
package rules
