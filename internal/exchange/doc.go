// Package exchange defines the venue and currency value types shared by the
// contract model: routing destinations, primary listing exchanges, and
// ISO 4217 currency codes.
//
// All three are plain string-backed types. They are stored and compared by
// the rest of the client but never interpreted; the broker is the authority
// on which values exist.
package exchange
