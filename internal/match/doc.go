// Package match provides value normalization, string similarity scoring and
// closest-candidate selection for repairing variant selections.
//
// Key functions:
//   - NormalizeValue: folds an attribute value for fuzzy comparison
//   - Bigram: Sørensen–Dice similarity over character bigrams (default)
//   - Levenshtein: computes edit distance between strings
//   - Closest / ClosestWith: picks the most similar candidate value
//   - Rank: ranks candidate values against a target
//
// Scores are heuristics for user-facing substitution only. Whether a value is
// actually compatible with a selection is decided by the matrix, never here.
package match
