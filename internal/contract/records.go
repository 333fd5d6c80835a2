package contract

import (
	"encoding/json"
	"time"

	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/exchange"
)

// The concrete record types below all follow the same pattern: an exported
// <Variant>Spec struct carrying every field, a New<Variant> constructor, and
// an immutable <Variant> value implementing Security. Specs are populated
// from broker contract-detail responses; this package validates identifiers
// but trusts broker-provided field contents.

// ForexSpec holds the fields of a Forex contract.
type ForexSpec struct {
	ContractID     ContractID         `json:"contract_id"`
	MinTick        float64            `json:"min_tick"`
	Symbol         string             `json:"symbol"`
	Exchange       exchange.Routing   `json:"exchange"`
	TradingClass   string             `json:"trading_class"`
	Currency       exchange.Currency  `json:"currency"`
	LocalSymbol    string             `json:"local_symbol"`
	LongName       string             `json:"long_name"`
	OrderTypes     []string           `json:"order_types"`
	ValidExchanges []exchange.Routing `json:"valid_exchanges"`
}

// Forex is a currency-pair contract, like GBPUSD.
type Forex struct {
	spec ForexSpec
}

// NewForex builds a forex contract from resolved fields.
func NewForex(spec ForexSpec) Forex { return Forex{spec: spec} }

// Spec returns a copy of the contract's full field set.
func (f Forex) Spec() ForexSpec { return f.spec }

// Exchange returns the contract's exchange.
func (f Forex) Exchange() exchange.Routing { return f.spec.Exchange }

// TradingClass returns the contract's trading class.
func (f Forex) TradingClass() string { return f.spec.TradingClass }

func (f Forex) ContractID() ContractID               { return f.spec.ContractID }
func (f Forex) MinTick() float64                     { return f.spec.MinTick }
func (f Forex) Symbol() string                       { return f.spec.Symbol }
func (f Forex) Currency() exchange.Currency          { return f.spec.Currency }
func (f Forex) LocalSymbol() string                  { return f.spec.LocalSymbol }
func (f Forex) LongName() string                     { return f.spec.LongName }
func (f Forex) OrderTypes() []string                 { return f.spec.OrderTypes }
func (f Forex) ValidExchanges() []exchange.Routing   { return f.spec.ValidExchanges }
func (Forex) contractType() ContractType             { return TypeForex }

type forexJSON struct {
	SecType ContractType `json:"sec_type"`
	ForexSpec
}

// MarshalJSON encodes the contract with its sec_type tag.
func (f Forex) MarshalJSON() ([]byte, error) {
	return json.Marshal(forexJSON{SecType: TypeForex, ForexSpec: f.spec})
}

// UnmarshalJSON decodes a contract, rejecting a mismatched sec_type tag.
func (f *Forex) UnmarshalJSON(data []byte) error {
	var v forexJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.SecType != "" && v.SecType != TypeForex {
		return &WrongContractTypeError{Want: TypeForex, Got: v.SecType}
	}
	f.spec = v.ForexSpec
	return nil
}

// CryptoSpec holds the fields of a Crypto contract.
type CryptoSpec struct {
	ContractID     ContractID         `json:"contract_id"`
	MinTick        float64            `json:"min_tick"`
	Symbol         string             `json:"symbol"`
	TradingClass   string             `json:"trading_class"`
	Currency       exchange.Currency  `json:"currency"`
	LocalSymbol    string             `json:"local_symbol"`
	LongName       string             `json:"long_name"`
	OrderTypes     []string           `json:"order_types"`
	ValidExchanges []exchange.Routing `json:"valid_exchanges"`
}

// Crypto is a crypto-asset contract, like BTC.
type Crypto struct {
	spec CryptoSpec
}

// NewCrypto builds a crypto contract from resolved fields.
func NewCrypto(spec CryptoSpec) Crypto { return Crypto{spec: spec} }

// Spec returns a copy of the contract's full field set.
func (c Crypto) Spec() CryptoSpec { return c.spec }

// TradingClass returns the contract's trading class.
func (c Crypto) TradingClass() string { return c.spec.TradingClass }

func (c Crypto) ContractID() ContractID             { return c.spec.ContractID }
func (c Crypto) MinTick() float64                   { return c.spec.MinTick }
func (c Crypto) Symbol() string                     { return c.spec.Symbol }
func (c Crypto) Currency() exchange.Currency        { return c.spec.Currency }
func (c Crypto) LocalSymbol() string                { return c.spec.LocalSymbol }
func (c Crypto) LongName() string                   { return c.spec.LongName }
func (c Crypto) OrderTypes() []string               { return c.spec.OrderTypes }
func (c Crypto) ValidExchanges() []exchange.Routing { return c.spec.ValidExchanges }
func (Crypto) contractType() ContractType           { return TypeCrypto }

type cryptoJSON struct {
	SecType ContractType `json:"sec_type"`
	CryptoSpec
}

func (c Crypto) MarshalJSON() ([]byte, error) {
	return json.Marshal(cryptoJSON{SecType: TypeCrypto, CryptoSpec: c.spec})
}

func (c *Crypto) UnmarshalJSON(data []byte) error {
	var v cryptoJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.SecType != "" && v.SecType != TypeCrypto {
		return &WrongContractTypeError{Want: TypeCrypto, Got: v.SecType}
	}
	c.spec = v.CryptoSpec
	return nil
}

// StockSpec holds the fields of a Stock contract.
type StockSpec struct {
	ContractID      ContractID         `json:"contract_id"`
	MinTick         float64            `json:"min_tick"`
	Symbol          string             `json:"symbol"`
	Exchange        exchange.Routing   `json:"exchange"`
	PrimaryExchange exchange.Primary   `json:"primary_exchange"`
	StockType       string             `json:"stock_type"`
	SecurityIDs     []SecurityID       `json:"security_ids"`
	Sector          string             `json:"sector"`
	TradingClass    string             `json:"trading_class"`
	Currency        exchange.Currency  `json:"currency"`
	LocalSymbol     string             `json:"local_symbol"`
	LongName        string             `json:"long_name"`
	OrderTypes      []string           `json:"order_types"`
	ValidExchanges  []exchange.Routing `json:"valid_exchanges"`
}

// Stock is an equity contract, like AAPL.
type Stock struct {
	spec StockSpec
}

// NewStock builds a stock contract from resolved fields.
func NewStock(spec StockSpec) Stock { return Stock{spec: spec} }

// Spec returns a copy of the contract's full field set.
func (s Stock) Spec() StockSpec { return s.spec }

// Exchange returns the contract's exchange.
func (s Stock) Exchange() exchange.Routing { return s.spec.Exchange }

// PrimaryExchange returns the primary listing exchange.
func (s Stock) PrimaryExchange() exchange.Primary { return s.spec.PrimaryExchange }

// StockType returns the broker's stock sub-classification (e.g. COMMON, ETF).
func (s Stock) StockType() string { return s.spec.StockType }

// SecurityIDs returns the industry identifiers attached to the stock.
func (s Stock) SecurityIDs() []SecurityID { return s.spec.SecurityIDs }

// Sector returns the stock's industry sector.
func (s Stock) Sector() string { return s.spec.Sector }

// TradingClass returns the contract's trading class.
func (s Stock) TradingClass() string { return s.spec.TradingClass }

func (s Stock) ContractID() ContractID             { return s.spec.ContractID }
func (s Stock) MinTick() float64                   { return s.spec.MinTick }
func (s Stock) Symbol() string                     { return s.spec.Symbol }
func (s Stock) Currency() exchange.Currency        { return s.spec.Currency }
func (s Stock) LocalSymbol() string                { return s.spec.LocalSymbol }
func (s Stock) LongName() string                   { return s.spec.LongName }
func (s Stock) OrderTypes() []string               { return s.spec.OrderTypes }
func (s Stock) ValidExchanges() []exchange.Routing { return s.spec.ValidExchanges }
func (Stock) contractType() ContractType           { return TypeStock }

type stockJSON struct {
	SecType ContractType `json:"sec_type"`
	StockSpec
}

func (s Stock) MarshalJSON() ([]byte, error) {
	return json.Marshal(stockJSON{SecType: TypeStock, StockSpec: s.spec})
}

func (s *Stock) UnmarshalJSON(data []byte) error {
	var v stockJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.SecType != "" && v.SecType != TypeStock {
		return &WrongContractTypeError{Want: TypeStock, Got: v.SecType}
	}
	s.spec = v.StockSpec
	return nil
}

// IndexSpec holds the fields of an Index contract.
type IndexSpec struct {
	ContractID     ContractID         `json:"contract_id"`
	MinTick        float64            `json:"min_tick"`
	Symbol         string             `json:"symbol"`
	Exchange       exchange.Routing   `json:"exchange"`
	Currency       exchange.Currency  `json:"currency"`
	LocalSymbol    string             `json:"local_symbol"`
	LongName       string             `json:"long_name"`
	OrderTypes     []string           `json:"order_types"`
	ValidExchanges []exchange.Routing `json:"valid_exchanges"`
}

// Index is a market index contract, like SPX.
type Index struct {
	spec IndexSpec
}

// NewIndex builds an index contract from resolved fields.
func NewIndex(spec IndexSpec) Index { return Index{spec: spec} }

// Spec returns a copy of the contract's full field set.
func (i Index) Spec() IndexSpec { return i.spec }

// Exchange returns the contract's exchange.
func (i Index) Exchange() exchange.Routing { return i.spec.Exchange }

func (i Index) ContractID() ContractID             { return i.spec.ContractID }
func (i Index) MinTick() float64                   { return i.spec.MinTick }
func (i Index) Symbol() string                     { return i.spec.Symbol }
func (i Index) Currency() exchange.Currency        { return i.spec.Currency }
func (i Index) LocalSymbol() string                { return i.spec.LocalSymbol }
func (i Index) LongName() string                   { return i.spec.LongName }
func (i Index) OrderTypes() []string               { return i.spec.OrderTypes }
func (i Index) ValidExchanges() []exchange.Routing { return i.spec.ValidExchanges }
func (Index) contractType() ContractType           { return TypeIndex }

type indexJSON struct {
	SecType ContractType `json:"sec_type"`
	IndexSpec
}

func (i Index) MarshalJSON() ([]byte, error) {
	return json.Marshal(indexJSON{SecType: TypeIndex, IndexSpec: i.spec})
}

func (i *Index) UnmarshalJSON(data []byte) error {
	var v indexJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.SecType != "" && v.SecType != TypeIndex {
		return &WrongContractTypeError{Want: TypeIndex, Got: v.SecType}
	}
	i.spec = v.IndexSpec
	return nil
}

// CommoditySpec holds the fields of a Commodity contract.
type CommoditySpec struct {
	ContractID     ContractID         `json:"contract_id"`
	MinTick        float64            `json:"min_tick"`
	Symbol         string             `json:"symbol"`
	Exchange       exchange.Routing   `json:"exchange"`
	TradingClass   string             `json:"trading_class"`
	Currency       exchange.Currency  `json:"currency"`
	LocalSymbol    string             `json:"local_symbol"`
	LongName       string             `json:"long_name"`
	OrderTypes     []string           `json:"order_types"`
	ValidExchanges []exchange.Routing `json:"valid_exchanges"`
}

// Commodity is a commodity contract, like XAUUSD.
type Commodity struct {
	spec CommoditySpec
}

// NewCommodity builds a commodity contract from resolved fields.
func NewCommodity(spec CommoditySpec) Commodity { return Commodity{spec: spec} }

// Spec returns a copy of the contract's full field set.
func (c Commodity) Spec() CommoditySpec { return c.spec }

// Exchange returns the contract's exchange.
func (c Commodity) Exchange() exchange.Routing { return c.spec.Exchange }

// TradingClass returns the contract's trading class.
func (c Commodity) TradingClass() string { return c.spec.TradingClass }

func (c Commodity) ContractID() ContractID             { return c.spec.ContractID }
func (c Commodity) MinTick() float64                   { return c.spec.MinTick }
func (c Commodity) Symbol() string                     { return c.spec.Symbol }
func (c Commodity) Currency() exchange.Currency        { return c.spec.Currency }
func (c Commodity) LocalSymbol() string                { return c.spec.LocalSymbol }
func (c Commodity) LongName() string                   { return c.spec.LongName }
func (c Commodity) OrderTypes() []string               { return c.spec.OrderTypes }
func (c Commodity) ValidExchanges() []exchange.Routing { return c.spec.ValidExchanges }
func (Commodity) contractType() ContractType           { return TypeCommodity }

type commodityJSON struct {
	SecType ContractType `json:"sec_type"`
	CommoditySpec
}

func (c Commodity) MarshalJSON() ([]byte, error) {
	return json.Marshal(commodityJSON{SecType: TypeCommodity, CommoditySpec: c.spec})
}

func (c *Commodity) UnmarshalJSON(data []byte) error {
	var v commodityJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.SecType != "" && v.SecType != TypeCommodity {
		return &WrongContractTypeError{Want: TypeCommodity, Got: v.SecType}
	}
	c.spec = v.CommoditySpec
	return nil
}

// SecFutureSpec holds the fields of a SecFuture contract.
type SecFutureSpec struct {
	ContractID           ContractID         `json:"contract_id"`
	MinTick              float64            `json:"min_tick"`
	Symbol               string             `json:"symbol"`
	Exchange             exchange.Routing   `json:"exchange"`
	Multiplier           int                `json:"multiplier"`
	ExpirationDate       time.Time          `json:"expiration_date"`
	TradingClass         string             `json:"trading_class"`
	UnderlyingContractID ContractID         `json:"underlying_contract_id"`
	Currency             exchange.Currency  `json:"currency"`
	LocalSymbol          string             `json:"local_symbol"`
	LongName             string             `json:"long_name"`
	OrderTypes           []string           `json:"order_types"`
	ValidExchanges       []exchange.Routing `json:"valid_exchanges"`
}

// SecFuture is a futures contract, like FGBL MAR 23.
type SecFuture struct {
	spec SecFutureSpec
}

// NewSecFuture builds a futures contract from resolved fields.
func NewSecFuture(spec SecFutureSpec) SecFuture { return SecFuture{spec: spec} }

// Spec returns a copy of the contract's full field set.
func (f SecFuture) Spec() SecFutureSpec { return f.spec }

// Exchange returns the contract's exchange.
func (f SecFuture) Exchange() exchange.Routing { return f.spec.Exchange }

// Multiplier returns the contract multiplier.
func (f SecFuture) Multiplier() int { return f.spec.Multiplier }

// ExpirationDate returns the contract's expiration date.
func (f SecFuture) ExpirationDate() time.Time { return f.spec.ExpirationDate }

// TradingClass returns the contract's trading class.
func (f SecFuture) TradingClass() string { return f.spec.TradingClass }

// UnderlyingContractID returns the contract ID of the underlying.
func (f SecFuture) UnderlyingContractID() ContractID { return f.spec.UnderlyingContractID }

func (f SecFuture) ContractID() ContractID             { return f.spec.ContractID }
func (f SecFuture) MinTick() float64                   { return f.spec.MinTick }
func (f SecFuture) Symbol() string                     { return f.spec.Symbol }
func (f SecFuture) Currency() exchange.Currency        { return f.spec.Currency }
func (f SecFuture) LocalSymbol() string                { return f.spec.LocalSymbol }
func (f SecFuture) LongName() string                   { return f.spec.LongName }
func (f SecFuture) OrderTypes() []string               { return f.spec.OrderTypes }
func (f SecFuture) ValidExchanges() []exchange.Routing { return f.spec.ValidExchanges }
func (SecFuture) contractType() ContractType           { return TypeFuture }

type secFutureJSON struct {
	SecType ContractType `json:"sec_type"`
	SecFutureSpec
}

func (f SecFuture) MarshalJSON() ([]byte, error) {
	return json.Marshal(secFutureJSON{SecType: TypeFuture, SecFutureSpec: f.spec})
}

func (f *SecFuture) UnmarshalJSON(data []byte) error {
	var v secFutureJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.SecType != "" && v.SecType != TypeFuture {
		return &WrongContractTypeError{Want: TypeFuture, Got: v.SecType}
	}
	f.spec = v.SecFutureSpec
	return nil
}
