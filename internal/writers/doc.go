// Package writers turns words and pairs into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text lines, JSONL, counts).
//   - core/ stays domain-only; apps only pick a format by name.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
package writers
