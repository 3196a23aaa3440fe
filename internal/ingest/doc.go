// Package ingest is the file boundary in front of the parsing engine.
//
// It owns everything the pure core does not: reading bytes from disk,
// decoding (UTF-8 with an optional Windows-1252 fallback for older
// instrument software), mojibake repair, filename matching, and the cheap
// measurement-count probe an orchestrator uses to pre-allocate one output
// per measurement before the full parse runs.
package ingest
