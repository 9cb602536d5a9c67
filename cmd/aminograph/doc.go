// Command aminograph infers, resumes, and inspects ancestral-sequence
// DAGs over a protein alignment. Each subcommand operates on a working
// directory holding matrix.paml, alignment.fasta, graph.json,
// parameter.txt, moves.log, and rounds.log.
package main
