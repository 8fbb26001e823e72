// Package rewrite converts legacy Cot parity tests to the inline test
// syntax.
//
// The old convention encodes a test as an entry point returning a
// status code:
//
//	fn main() i64 {
//	    // setup
//	    if condition { return 0; }
//	    return 1;
//	}
//
// The new convention uses a named test block with an assertion:
//
//	test "descriptive name" {
//	    // setup
//	    @assert(condition)
//	}
//
// Two operations make up the package: Labeler.DeriveLabel maps a
// filename like expr_001_add.cot to the label "expression: add", and
// Transform rewrites the entry-point construct in place, leaving every
// byte outside it untouched. Both are pure functions over their inputs;
// file discovery, I/O and reporting live in the surrounding packages.
//
// Transform recognizes two shapes of the legacy construct. The
// single-line shape, where the whole body is one condition check, is
// replaced directly. The general shape is extracted with a
// nested-brace-aware scan, split into setup statements and the final
// condition, and re-indented with a single-pass heuristic that assumes
// at most one net brace-depth change per line. Files the transform
// cannot recognize are returned unchanged together with a sentinel
// error, so a batch driver can report them without aborting.
package rewrite
