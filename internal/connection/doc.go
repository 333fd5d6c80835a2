// Package connection implements the gateway connection contracts are
// resolved through.
//
// The client speaks JSON frames over a single WebSocket to a broker
// gateway: a hello frame identifying the session, contract_query requests
// tagged with climbing request IDs, and contract or error replies. The
// gateway answers queries in order, which is what lets the contract
// package treat "the next reply" as the answer to the query it just sent.
//
// The broker's native 32-bit wire protocol is the gateway's concern, not
// this package's.
package connection
