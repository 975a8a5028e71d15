// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package flatten turns nested survey responses into flat tabular records.

# Pipeline

Flattening needs a catalog (package catalog) built from the survey detail
document. The column schema is derived from the detail document alone, before
any response is seen, so a CSV header can be written once:

	columns := flatten.BuildColumnIndex(detail, cat)

Each response then becomes one Record via an Assembler:

	asm := flatten.NewAssembler(cat, flatten.PolicySquish)
	rec, err := asm.Flatten(&resp)

or in bulk from a page source (e.g. smclient.ResponseIterator):

	result := asm.Run(pages)

# Family Transformers

One flattening rule per question family, dispatched by the catalog's family
tag:

  - single_choice: bare question label → choice label, or
    "question - other" → literal text for the free-text slot
  - multiple_choice: "question - choice" → choice label per selection,
    other slot as above
  - matrix: "question - row" → choice label per answered row
  - datetime: "question - row" → literal text
  - open_ended: bare question label → literal text

Families with no registered transformer are skipped without error.

A single_choice answer value is treated as an id reference only when it is a
token of exactly nine digits (the upstream id shape); anything else is kept
as a literal value. A literal answer that happens to look like an id is an
accepted ambiguity inherited from the upstream format.

# Collision Policy

Two questions can normalize to the same column name. PolicySquish (the
default) keeps the first non-empty value; PolicyEnumerate gives later writers
suffixed columns (col_2, col_3, ...) so no value is discarded.

# Errors

Per-response failures are UnknownReferenceError (an answer references an id
absent from the catalog) or UnsupportedAnswerShapeError (an entry shape the
family's transformer does not recognize). Both reject the whole record rather
than emit a partial row; Run collects rejections and keeps going.
*/
package flatten
