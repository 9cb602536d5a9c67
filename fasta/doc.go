// Package fasta reads multiple sequence alignments in FASTA format: records
// of a ">name" header line followed by one or more sequence lines. Every
// record in an alignment file is expected to have equal length; callers
// needing that invariant enforce it themselves (see alignment.ReadAlignment).
package fasta
