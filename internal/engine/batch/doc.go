// Package batch estimates many surveys at once.
//
// A Processor splits items into fixed-size batches and runs them sequentially or
// on an errgroup with a concurrency limit. A Runner feeds it scenario records
// (category plus raw answers, usually decoded from a YAML file), validates each
// with the survey package and collects one Result per record. A failing record
// never stops the rest of the batch.
package batch
