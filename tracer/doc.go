// Package tracer supplies structured-logging implementations of
// graph.Tracer, the narrow interface the scoring engine uses to report
// the named intermediate values (prior, likelihood) that make up a
// graph's posterior. graph.NullTracer already covers the silent case;
// this package adds the logging one.
package tracer
