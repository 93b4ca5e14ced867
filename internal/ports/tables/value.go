package tables

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type Kind uint8

const (
	KindAbsent Kind = iota
	KindNumber
	KindString
	// KindOther: bool, array u objeto. Solo conserva su truthiness.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindOther:
		return "other"
	default:
		return "absent"
	}
}

// Value es una celda tal como llega del upstream. El zero value es Absent,
// así que una columna que falta en el mapa se comporta igual que null.
type Value struct {
	kind   Kind
	num    float64
	str    string
	truthy bool
	raw    json.RawMessage
}

func Number(f float64) Value { return Value{kind: KindNumber, num: f} }
func String(s string) Value  { return Value{kind: KindString, str: s} }
func Absent() Value          { return Value{} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Truthy sigue la semántica JS: "" / 0 / NaN / null / false son falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNumber:
		return v.num != 0 && !math.IsNaN(v.num)
	case KindString:
		return v.str != ""
	case KindOther:
		return v.truthy
	default:
		return false
	}
}

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*v = Value{}
		return nil
	}

	switch b[0] {
	case 'n':
		*v = Value{}
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = String(s)
	case 't', 'f':
		var bv bool
		if err := json.Unmarshal(b, &bv); err != nil {
			return err
		}
		*v = Value{kind: KindOther, truthy: bv, raw: append(json.RawMessage(nil), b...)}
	case '[', '{':
		*v = Value{kind: KindOther, truthy: true, raw: append(json.RawMessage(nil), b...)}
	default:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("tables: invalid value %q: %w", b, err)
		}
		*v = Number(f)
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.str)
	case KindOther:
		if len(v.raw) > 0 {
			return v.raw, nil
		}
		return json.Marshal(v.truthy)
	default:
		return []byte("null"), nil
	}
}
