// Package naming holds the identifier rules shared by extraction,
// reconciliation and generation.
//
// Two rules are load-bearing and reproduced exactly:
//   - LowerFirst lower-cases only the first rune ("PM10Density" -> "pM10Density").
//     Generated accessor names key off it.
//   - Canonical builds the join key between the header catalog and the
//     relationship metadata ("PM2.5 Density" -> "PM2_5Density").
package naming
