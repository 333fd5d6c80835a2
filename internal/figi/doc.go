// Package figi implements parsing and validation of Financial Instrument
// Global Identifiers (FIGI, formerly Bloomberg Global Identifiers).
//
// A FIGI is a 12-character identifier:
//   - characters 1-2: upper-case consonants, excluding the prefixes
//     BS, BM, GG, GB, GH, KY and VG (reserved to avoid ISIN collisions)
//   - character 3: always 'G'
//   - characters 4-11: upper-case consonants or digits
//   - character 12: a check digit computed with the double-add-double
//     mod 10 algorithm over the first eleven characters
//
// Vowels never appear, so a FIGI always begins with a letter. Query parsing
// in the contract package relies on that property.
package figi
