// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog builds the per-survey lookup tables used by flattening.

A Catalog is constructed once from a survey detail document and is immutable
afterwards:

	cat, err := catalog.Build(detail)

It maps:

  - question id → family tag
  - question id → normalized question label (the first heading, HTML stripped)
  - row/choice/other id → normalized option label, across all questions

Every id a response's answer entries can reference must resolve through the
Catalog; flattening rejects the response otherwise. A question missing its
heading aborts the build with an error wrapping ErrMalformedCatalog, since a
survey whose catalog cannot be built has no usable column schema.

The same option id registered by two different questions is resolved
last-write-wins with a logged warning; the upstream format does not promise
global uniqueness.
*/
package catalog
