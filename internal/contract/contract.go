package contract

import (
	"encoding/json"
	"fmt"
)

// Contract is the closed union over all concrete security types: any value
// of one of the seven types in this package is a Contract, and nothing else
// is. It satisfies Security by dispatching to whichever concrete type it
// holds.
type Contract interface {
	Security
}

// WrongContractTypeError reports a narrowing attempt against a contract of
// a different concrete type. Callers probing several types in turn are
// expected to see and handle it.
type WrongContractTypeError struct {
	Want ContractType
	Got  ContractType
}

func (e *WrongContractTypeError) Error() string {
	return fmt.Sprintf("wrong contract type: want %s, got %s", e.Want, e.Got)
}

// Narrow recovers the concrete security type S from a contract. It is a
// pure tag check: no data is copied beyond the returned value itself. If c
// holds a different type, it fails with a *WrongContractTypeError naming the
// requested type.
//
// Narrow[Contract] always succeeds and returns c unchanged.
func Narrow[S Security](c Contract) (S, error) {
	if s, ok := c.(S); ok {
		return s, nil
	}
	var zero S
	return zero, &WrongContractTypeError{Want: typeFor[S](), Got: TypeOf(c)}
}

// typeFor reports the ContractType of the concrete type S, or "" when S is
// the Contract union itself.
func typeFor[S Security]() ContractType {
	var zero S
	if any(zero) == nil {
		return ""
	}
	return zero.contractType()
}

// UnmarshalContract decodes a JSON-encoded contract of any type, dispatching
// on its sec_type tag. It is the inverse of marshalling a Contract value
// with encoding/json.
func UnmarshalContract(data []byte) (Contract, error) {
	var probe struct {
		SecType ContractType `json:"sec_type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode contract: %w", err)
	}

	var (
		c   Contract
		err error
	)
	switch probe.SecType {
	case TypeForex:
		var v Forex
		err = json.Unmarshal(data, &v)
		c = v
	case TypeCrypto:
		var v Crypto
		err = json.Unmarshal(data, &v)
		c = v
	case TypeStock:
		var v Stock
		err = json.Unmarshal(data, &v)
		c = v
	case TypeIndex:
		var v Index
		err = json.Unmarshal(data, &v)
		c = v
	case TypeCommodity:
		var v Commodity
		err = json.Unmarshal(data, &v)
		c = v
	case TypeFuture:
		var v SecFuture
		err = json.Unmarshal(data, &v)
		c = v
	case TypeOption:
		var v SecOption
		err = json.Unmarshal(data, &v)
		c = v
	default:
		return nil, fmt.Errorf("decode contract: unknown sec_type %q", probe.SecType)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s contract: %w", probe.SecType, err)
	}
	return c, nil
}
