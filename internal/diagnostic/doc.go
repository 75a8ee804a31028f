// Package diagnostic provides structured, non-fatal findings collected
// while schemas are validated, records are normalized and options are
// resolved.
//
// Key capabilities:
//   - Unmapped field notes
//   - Discarded element notes
//   - Failed cast warnings (unparseable dates, non-numeric values)
//   - "Did you mean" suggestions for unknown names
package diagnostic
