package tinybase

/*
TinyBase is the storage-engine side of the TinyKV/TinySQL family of teaching projects. This module contains the
transaction write-set ordering subsystem: the code which establishes a canonical order over the modifications a
transaction has recorded, before those modifications are serialized into a write-ahead log, applied at commit, or
replayed during recovery and rollback. A deterministic per-table, per-key order is what makes replay consistent,
duplicate-key resolution possible, and sequential application efficient across restarts.

The module is organized into the following packages:

* `engine/schema`: table descriptors (id, storage kind, row-key collation) and the registry that hands them out.
  Descriptors are registered once and never mutated, so many transactions can look them up concurrently.
* `engine/transaction`: the modification record model, the ordering comparator, the in-place sort, the order
  validator, and the write set that accumulates a transaction's records until finalization.
* `engine/util/scratch`: a small buffer pool lending the byte buffers that row-store keys are built in. Records
  borrow keys from these buffers; they never own them.
* `engine/config`: configuration for the subsystem (logging, order re-checking, scratch buffer sizing).

The subsystem is purely in-process: it never reads or writes disk, never talks over a wire, and never manages
transaction state machines. The log writer, applier, and transaction lifecycle live elsewhere and consume the
ordered write set this module produces.
*/
