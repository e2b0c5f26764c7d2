// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package rsdd implements the node-storage and memoization core of a
decision-diagram library: hash-consed Binary Decision Diagram (BDD) nodes
and Sentential Decision Diagram (SDD) nodes, plus the memoization tables
that make binary and ternary operations over their handles run in time
polynomial in diagram size. BDD nodes are reachable through a single packed
machine-word handle.

# Handles

A BddPtr is a 64-bit word encoding one of the two Boolean constants or a
node reference (variable label, owning sub-table, node index, complement
bit). Two handles denote the same function if and only if they are equal as
machine words; this is the point of hash-consing. SddPtr plays the same role
for SDD nodes, indexed by vtree position instead of variable label; it is a
small struct rather than a packed word.

# Canonicity and memoization

A BddTable owns one Robin-Hood hashed unique table per variable. Calling
GetOrInsert with the same (variable, low, high) triple always returns the
same handle, and handles remain valid across table growth. A BddManager
layers the usual recursive Apply/Ite/Exist/AppEx/Replace algorithms on top.
Apply and Ite memoize their results in fixed-capacity, lossy, direct-mapped
LRU caches — a cache miss costs recomputation, never correctness; Exist and
Replace memoize in a map that lives only for the duration of one call.

# SDD support

An SddTable partitions storage by vtree position: leaf positions hold a
nested BddManager over that leaf's variables, internal positions hold a
Robin-Hood table of variable-length or-lists. SddManager forwards BDD-shaped
operations to the relevant leaf's BddManager through a stored label
bijection.

# Scope

This package owns node storage and memoization only. It does not parse CNF
files, generate random formulas, choose a variable order beyond a fixed
linear one, persist to disk, coordinate across goroutines, or reference
count: nodes are created monotonically for the lifetime of a manager and
released only when the manager itself is garbage collected by the Go
runtime.
*/
package rsdd
