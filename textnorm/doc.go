// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package textnorm canonicalizes label text before it becomes a column name.

Question headings and answer option labels arrive as HTML fragments with
inconsistent Unicode encodings and stray whitespace. Normalize applies, in
order:

 1. HTML tag stripping (entity references decoded, tags discarded)
 2. Unicode NFKC normalization, so visually identical but differently
    encoded characters collapse to one column key
 3. Whitespace collapsing: runs of spaces, tabs, and newlines become a
    single space; leading and trailing whitespace is trimmed

Normalize is pure and idempotent: Normalize(Normalize(s)) == Normalize(s).
*/
package textnorm
