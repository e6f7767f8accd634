// Package diagnostic provides structured warnings, errors, and
// "why this changed" explanations for catalog validation and selection repair.
//
// Key capabilities:
//   - Catalog structure findings (duplicate attributes, duplicate ids)
//   - Dropped selection entries with the reason they were dropped
//   - Repaired selection entries with the substituted value
package diagnostic
