package contract

import (
	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/exchange"
)

// Security is the capability set shared by every tradable instrument. All
// accessors are pure reads of fields resolved from broker data; none can
// fail.
//
// The interface is sealed: only the seven concrete types in this package
// satisfy it, matching the broker's fixed asset-class taxonomy.
type Security interface {
	// ContractID returns the broker's unique contract ID.
	ContractID() ContractID
	// MinTick returns the minimum price increment.
	MinTick() float64
	// Symbol returns the instrument's symbol.
	Symbol() string
	// Currency returns the trading currency.
	Currency() exchange.Currency
	// LocalSymbol returns the venue-local symbol.
	LocalSymbol() string
	// LongName returns the instrument's full name.
	LongName() string
	// OrderTypes returns the order-type codes the instrument supports.
	OrderTypes() []string
	// ValidExchanges returns the destinations orders may be routed to.
	ValidExchanges() []exchange.Routing

	// contractType seals the interface and tags the concrete type.
	contractType() ContractType
}

// ContractType names a concrete security type, using the broker's security
// type codes. It doubles as the sec_type tag in the JSON encoding and is
// what reporting code keys on.
type ContractType string

// The closed set of contract types.
const (
	TypeForex     ContractType = "CASH"
	TypeCrypto    ContractType = "CRYPTO"
	TypeStock     ContractType = "STK"
	TypeIndex     ContractType = "IND"
	TypeCommodity ContractType = "CMDTY"
	TypeFuture    ContractType = "FUT"
	TypeOption    ContractType = "OPT"
)

// String returns the broker's security type code.
func (t ContractType) String() string { return string(t) }

// TypeOf reports which concrete contract type s is.
func TypeOf(s Security) ContractType { return s.contractType() }
