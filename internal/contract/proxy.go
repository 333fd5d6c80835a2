package contract

import (
	"time"

	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/exchange"
)

// Proxy holds a security value that may represent only partial knowledge of
// a contract, e.g. one rebuilt from position or scanner data rather than a
// full contract-detail lookup. It exposes the reduced accessor set that such
// data can always populate; the named per-type proxies below add the fields
// specific to what they hold.
type Proxy[S Security] struct {
	inner S
}

// NewProxy wraps a security value in a Proxy.
func NewProxy[S Security](s S) Proxy[S] { return Proxy[S]{inner: s} }

// ContractID returns the held security's contract ID.
func (p Proxy[S]) ContractID() ContractID { return p.inner.ContractID() }

// Symbol returns the held security's symbol.
func (p Proxy[S]) Symbol() string { return p.inner.Symbol() }

// Currency returns the held security's currency.
func (p Proxy[S]) Currency() exchange.Currency { return p.inner.Currency() }

// LocalSymbol returns the held security's venue-local symbol.
func (p Proxy[S]) LocalSymbol() string { return p.inner.LocalSymbol() }

// ContractType reports which concrete contract type is held.
func (p Proxy[S]) ContractType() ContractType { return p.inner.contractType() }

// ContractProxy is a Proxy over the contract union. It narrows to the
// per-type proxies by the same tag-check rule as Narrow.
type ContractProxy struct {
	Proxy[Contract]
}

// NewContractProxy wraps a contract in a ContractProxy.
func NewContractProxy(c Contract) ContractProxy {
	return ContractProxy{Proxy[Contract]{inner: c}}
}

// Forex narrows the proxy to a forex contract.
func (p ContractProxy) Forex() (ForexProxy, error) {
	s, err := Narrow[Forex](p.inner)
	if err != nil {
		return ForexProxy{}, err
	}
	return ForexProxy{Proxy[Forex]{inner: s}}, nil
}

// Crypto narrows the proxy to a crypto contract.
func (p ContractProxy) Crypto() (CryptoProxy, error) {
	s, err := Narrow[Crypto](p.inner)
	if err != nil {
		return CryptoProxy{}, err
	}
	return CryptoProxy{Proxy[Crypto]{inner: s}}, nil
}

// Stock narrows the proxy to a stock contract.
func (p ContractProxy) Stock() (StockProxy, error) {
	s, err := Narrow[Stock](p.inner)
	if err != nil {
		return StockProxy{}, err
	}
	return StockProxy{Proxy[Stock]{inner: s}}, nil
}

// Index narrows the proxy to an index contract.
func (p ContractProxy) Index() (IndexProxy, error) {
	s, err := Narrow[Index](p.inner)
	if err != nil {
		return IndexProxy{}, err
	}
	return IndexProxy{Proxy[Index]{inner: s}}, nil
}

// Commodity narrows the proxy to a commodity contract.
func (p ContractProxy) Commodity() (CommodityProxy, error) {
	s, err := Narrow[Commodity](p.inner)
	if err != nil {
		return CommodityProxy{}, err
	}
	return CommodityProxy{Proxy[Commodity]{inner: s}}, nil
}

// SecFuture narrows the proxy to a futures contract.
func (p ContractProxy) SecFuture() (SecFutureProxy, error) {
	s, err := Narrow[SecFuture](p.inner)
	if err != nil {
		return SecFutureProxy{}, err
	}
	return SecFutureProxy{Proxy[SecFuture]{inner: s}}, nil
}

// SecOption narrows the proxy to an option contract.
func (p ContractProxy) SecOption() (SecOptionProxy, error) {
	s, err := Narrow[SecOption](p.inner)
	if err != nil {
		return SecOptionProxy{}, err
	}
	return SecOptionProxy{Proxy[SecOption]{inner: s}}, nil
}

// ForexProxy is a Proxy over a forex contract.
type ForexProxy struct {
	Proxy[Forex]
}

// TradingClass returns the held contract's trading class.
func (p ForexProxy) TradingClass() string { return p.inner.TradingClass() }

// CryptoProxy is a Proxy over a crypto contract.
type CryptoProxy struct {
	Proxy[Crypto]
}

// TradingClass returns the held contract's trading class.
func (p CryptoProxy) TradingClass() string { return p.inner.TradingClass() }

// StockProxy is a Proxy over a stock contract.
type StockProxy struct {
	Proxy[Stock]
}

// TradingClass returns the held contract's trading class.
func (p StockProxy) TradingClass() string { return p.inner.TradingClass() }

// PrimaryExchange returns the held contract's primary listing exchange.
func (p StockProxy) PrimaryExchange() exchange.Primary { return p.inner.PrimaryExchange() }

// IndexProxy is a Proxy over an index contract.
type IndexProxy struct {
	Proxy[Index]
}

// CommodityProxy is a Proxy over a commodity contract.
type CommodityProxy struct {
	Proxy[Commodity]
}

// TradingClass returns the held contract's trading class.
func (p CommodityProxy) TradingClass() string { return p.inner.TradingClass() }

// SecFutureProxy is a Proxy over a futures contract.
type SecFutureProxy struct {
	Proxy[SecFuture]
}

// TradingClass returns the held contract's trading class.
func (p SecFutureProxy) TradingClass() string { return p.inner.TradingClass() }

// ExpirationDate returns the held contract's expiration date.
func (p SecFutureProxy) ExpirationDate() time.Time { return p.inner.ExpirationDate() }

// Multiplier returns the held contract's multiplier.
func (p SecFutureProxy) Multiplier() int { return p.inner.Multiplier() }

// SecOptionProxy is a Proxy over an option contract.
type SecOptionProxy struct {
	Proxy[SecOption]
}

// TradingClass returns the held contract's trading class.
func (p SecOptionProxy) TradingClass() string { return p.inner.TradingClass() }

// ExpirationDate returns the held option's expiration date.
func (p SecOptionProxy) ExpirationDate() time.Time { return p.inner.ExpirationDate() }

// Strike returns the held option's strike price.
func (p SecOptionProxy) Strike() float64 { return p.inner.Strike() }

// Multiplier returns the held option's multiplier.
func (p SecOptionProxy) Multiplier() int { return p.inner.Multiplier() }

// IsCall reports whether the held option is a call.
func (p SecOptionProxy) IsCall() bool { return p.inner.IsCall() }

// IsPut reports whether the held option is a put.
func (p SecOptionProxy) IsPut() bool { return p.inner.IsPut() }
