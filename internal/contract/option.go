package contract

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/exchange"
)

// Right distinguishes call options from put options.
type Right uint8

const (
	// Call pays max(S_T - K, 0) at expiry.
	Call Right = iota
	// Put pays max(K - S_T, 0) at expiry.
	Put
)

// String returns the broker's right code, "C" or "P".
func (r Right) String() string {
	if r == Call {
		return "C"
	}
	return "P"
}

// MarshalText encodes the right as its broker code.
func (r Right) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText decodes a broker right code.
func (r *Right) UnmarshalText(text []byte) error {
	switch string(text) {
	case "C":
		*r = Call
	case "P":
		*r = Put
	default:
		return fmt.Errorf("invalid option right %q", text)
	}
	return nil
}

// SecOptionSpec holds the fields shared by call and put options.
type SecOptionSpec struct {
	ContractID           ContractID         `json:"contract_id"`
	MinTick              float64            `json:"min_tick"`
	Symbol               string             `json:"symbol"`
	Exchange             exchange.Routing   `json:"exchange"`
	Strike               float64            `json:"strike"`
	Multiplier           int                `json:"multiplier"`
	ExpirationDate       time.Time          `json:"expiration_date"`
	UnderlyingContractID ContractID         `json:"underlying_contract_id"`
	Sector               string             `json:"sector"`
	TradingClass         string             `json:"trading_class"`
	Currency             exchange.Currency  `json:"currency"`
	LocalSymbol          string             `json:"local_symbol"`
	LongName             string             `json:"long_name"`
	OrderTypes           []string           `json:"order_types"`
	ValidExchanges       []exchange.Routing `json:"valid_exchanges"`
}

// SecOption is a vanilla option contract, like P BMW 20221216 72 M. The
// right tag (call or put) wraps a spec shared by both rights.
type SecOption struct {
	right Right
	spec  SecOptionSpec
}

// NewCall builds a call option from resolved fields.
func NewCall(spec SecOptionSpec) SecOption { return SecOption{right: Call, spec: spec} }

// NewPut builds a put option from resolved fields.
func NewPut(spec SecOptionSpec) SecOption { return SecOption{right: Put, spec: spec} }

// Right returns the option's right tag.
func (o SecOption) Right() Right { return o.right }

// IsCall reports whether the option is a call.
func (o SecOption) IsCall() bool { return o.right == Call }

// IsPut reports whether the option is a put.
func (o SecOption) IsPut() bool { return !o.IsCall() }

// Spec returns a copy of the fields shared by both rights.
func (o SecOption) Spec() SecOptionSpec { return o.spec }

// Exchange returns the contract's exchange.
func (o SecOption) Exchange() exchange.Routing { return o.spec.Exchange }

// Strike returns the option's strike price.
func (o SecOption) Strike() float64 { return o.spec.Strike }

// Multiplier returns the contract multiplier.
func (o SecOption) Multiplier() int { return o.spec.Multiplier }

// ExpirationDate returns the option's expiration date.
func (o SecOption) ExpirationDate() time.Time { return o.spec.ExpirationDate }

// UnderlyingContractID returns the contract ID of the underlying.
func (o SecOption) UnderlyingContractID() ContractID { return o.spec.UnderlyingContractID }

// Sector returns the underlying's industry sector.
func (o SecOption) Sector() string { return o.spec.Sector }

// TradingClass returns the contract's trading class.
func (o SecOption) TradingClass() string { return o.spec.TradingClass }

func (o SecOption) ContractID() ContractID             { return o.spec.ContractID }
func (o SecOption) MinTick() float64                   { return o.spec.MinTick }
func (o SecOption) Symbol() string                     { return o.spec.Symbol }
func (o SecOption) Currency() exchange.Currency        { return o.spec.Currency }
func (o SecOption) LocalSymbol() string                { return o.spec.LocalSymbol }
func (o SecOption) LongName() string                   { return o.spec.LongName }
func (o SecOption) OrderTypes() []string               { return o.spec.OrderTypes }
func (o SecOption) ValidExchanges() []exchange.Routing { return o.spec.ValidExchanges }
func (SecOption) contractType() ContractType           { return TypeOption }

type secOptionJSON struct {
	SecType ContractType `json:"sec_type"`
	Right   Right        `json:"right"`
	SecOptionSpec
}

func (o SecOption) MarshalJSON() ([]byte, error) {
	return json.Marshal(secOptionJSON{SecType: TypeOption, Right: o.right, SecOptionSpec: o.spec})
}

func (o *SecOption) UnmarshalJSON(data []byte) error {
	var v secOptionJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.SecType != "" && v.SecType != TypeOption {
		return &WrongContractTypeError{Want: TypeOption, Got: v.SecType}
	}
	o.right = v.Right
	o.spec = v.SecOptionSpec
	return nil
}
