// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export writes assembled records to CSV or JSONL.

WriteCSV uses the column index as the fixed header; every record row conforms
to it, with absent columns written as empty strings. A record column that is
not in the index means the schema contract was broken upstream (typically the
enumerate collision policy paired with a CSV sink) and fails the write rather
than silently widening the header.

WriteJSONL writes one JSON object per record per line. Column order inside a
line follows the record's own insertion order and carries no meaning;
overflow columns are fine here.
*/
package export
