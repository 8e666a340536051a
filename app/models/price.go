package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Price is a nullable decimal amount. A null price means "price on request"
// and renders without a number on the menu.
type Price struct {
	decimal.NullDecimal
}

func NewPrice(value float64) Price {
	return Price{decimal.NullDecimal{Decimal: decimal.NewFromFloat(value), Valid: true}}
}

func NullPrice() Price {
	return Price{}
}

func (p Price) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !p.Valid {
		return bsontype.Null, nil, nil
	}
	f, _ := p.Decimal.Float64()
	return bsontype.Double, bsoncore.AppendDouble(nil, f), nil
}

func (p *Price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null, bsontype.Undefined:
		p.Valid = false
		return nil
	case bsontype.Double:
		f, _, ok := bsoncore.ReadDouble(data)
		if !ok {
			return fmt.Errorf("price: malformed double value")
		}
		p.Decimal = decimal.NewFromFloat(f)
		p.Valid = true
		return nil
	case bsontype.Int32:
		v, _, ok := bsoncore.ReadInt32(data)
		if !ok {
			return fmt.Errorf("price: malformed int32 value")
		}
		p.Decimal = decimal.NewFromInt(int64(v))
		p.Valid = true
		return nil
	case bsontype.Int64:
		v, _, ok := bsoncore.ReadInt64(data)
		if !ok {
			return fmt.Errorf("price: malformed int64 value")
		}
		p.Decimal = decimal.NewFromInt(v)
		p.Valid = true
		return nil
	default:
		return fmt.Errorf("price: cannot decode bson type %s", t)
	}
}
