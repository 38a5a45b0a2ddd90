package transaction

// The transaction package implements the write-set ordering step of TinyBase's transaction layer. While a
// transaction runs, every write it performs is recorded as a Modification: a reference to the table it touches,
// an operation kind, and the write's position in that table's key space (a row key for row stores, a record
// number for column stores). Structural operations such as truncates and reference deletes have no single
// position and carry no key at all.
//
// At finalization time, and before the records are handed to the log writer or the commit applier, the whole
// list is rearranged into canonical order: grouped by table id ascending, and within one table by key or
// record number ascending. Downstream consumers depend on this order for consistent replay, duplicate-key
// resolution, and sequential application. Unkeyed operations are a deliberate exception: they tie with every
// record on their table and may land anywhere within that table's group. The sort is not stable, so two
// finalizations of equivalent write sets may interleave ties differently; InCanonicalOrder accepts any such
// interleaving.
//
// The comparator never allocates and never looks at anything but the two records it is given. The one failure
// it can report is schema corruption: two records that share a table id but disagree on the table's storage
// kind. That aborts the whole sort or validation, since picking an arbitrary order would corrupt replay.
// SortModifications checks for this condition before moving anything, so a failed sort leaves the list exactly
// as it was.
//
// Row keys inside Modifications are borrowed, typically from a scratch.Pool. They must stay live until the
// write set is resolved; this package only ever reads through them.
