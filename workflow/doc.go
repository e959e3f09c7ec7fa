// Package workflow turns a batch of input structures into the labelled
// variants a downstream electronic-structure code consumes.
//
// A Runner is built once from a validated config.Config. Run then, for every
// input structure in order:
//
//  1. labels it "Structure N (formula)";
//  2. expands it into magnetic variants according to the configured scheme;
//  3. for defect calculations, rescales every variant into a supercell and
//     reduces it to one representative site per coordination environment.
//
// A Chemical Inconsistency in any variant aborts the whole run; no partial
// Result is returned. Every run carries a random run id that is attached to
// all log records.
package workflow
