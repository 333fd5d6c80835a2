package contract

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestOptionRightsAreComplementary(t *testing.T) {
	spec := sampleOptionSpec()

	call := NewCall(spec)
	if !call.IsCall() || call.IsPut() {
		t.Errorf("call: IsCall=%v IsPut=%v, want true/false", call.IsCall(), call.IsPut())
	}
	if call.Right() != Call {
		t.Errorf("call.Right() = %v, want Call", call.Right())
	}

	put := NewPut(spec)
	if put.IsCall() || !put.IsPut() {
		t.Errorf("put: IsCall=%v IsPut=%v, want false/true", put.IsCall(), put.IsPut())
	}
	if put.Right() != Put {
		t.Errorf("put.Right() = %v, want Put", put.Right())
	}
}

func TestOptionSpecSharedAcrossRights(t *testing.T) {
	// The right tag wraps the same inner record either way.
	spec := sampleOptionSpec()
	call := NewCall(spec)
	put := NewPut(spec)

	if !reflect.DeepEqual(call.Spec(), put.Spec()) {
		t.Error("call and put specs differ for the same input")
	}
	if !reflect.DeepEqual(call.Spec(), spec) {
		t.Errorf("Spec() = %+v, want %+v", call.Spec(), spec)
	}
	if call.Strike() != 72 {
		t.Errorf("Strike() = %v, want 72", call.Strike())
	}
	if call.Multiplier() != 100 {
		t.Errorf("Multiplier() = %d, want 100", call.Multiplier())
	}
	if call.UnderlyingContractID() != 14094 {
		t.Errorf("UnderlyingContractID() = %d", call.UnderlyingContractID())
	}
}

func TestRightText(t *testing.T) {
	tests := []struct {
		right Right
		text  string
	}{
		{Call, "C"},
		{Put, "P"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			b, err := tt.right.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.text {
				t.Errorf("MarshalText() = %q, want %q", b, tt.text)
			}

			var r Right
			if err := r.UnmarshalText([]byte(tt.text)); err != nil {
				t.Fatal(err)
			}
			if r != tt.right {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, r, tt.right)
			}
		})
	}

	var r Right
	if err := r.UnmarshalText([]byte("X")); err == nil {
		t.Error("UnmarshalText(\"X\") succeeded, want error")
	}
}

func TestOptionJSONKeepsRight(t *testing.T) {
	call := NewCall(sampleOptionSpec())
	data, err := json.Marshal(call)
	if err != nil {
		t.Fatal(err)
	}

	var decoded SecOption
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !decoded.IsCall() {
		t.Error("round-tripped call decoded as put")
	}

	put := NewPut(sampleOptionSpec())
	data, err = json.Marshal(put)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !decoded.IsPut() {
		t.Error("round-tripped put decoded as call")
	}
}
