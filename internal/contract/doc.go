// Package contract models the broker's tradable instruments.
//
// The broker's asset-class taxonomy is closed: a contract is exactly one of
// Forex, Crypto, Stock, Index, Commodity, SecFuture or SecOption. Every
// concrete type satisfies the Security capability interface, and Contract is
// the sealed union over all seven. Narrow recovers a concrete type from a
// Contract; Resolve looks a contract up through a gateway connection from a
// Query (broker contract ID or FIGI).
//
// All values here are immutable once constructed: resolution produces fresh
// values, it never patches existing ones. Slices returned by accessors are
// owned by the contract and must not be mutated by callers.
package contract
