package models

import (
	"database/sql/driver"
	"fmt"
)

// Pricing is either free or paid with a non-negative fee. The zero value is free.
// It is stored as a nullable integer column: NULL means free.
type Pricing struct {
	paid bool
	fee  int
}

func Free() Pricing {
	return Pricing{}
}

func Paid(fee int) (Pricing, error) {
	if fee < 0 {
		return Pricing{}, fmt.Errorf("fee must not be negative, got %d", fee)
	}
	return Pricing{paid: true, fee: fee}, nil
}

func (p Pricing) IsPaid() bool {
	return p.paid
}

// Fee returns the fee and true for paid events, and 0, false otherwise.
func (p Pricing) Fee() (int, bool) {
	return p.fee, p.paid
}

// FeePtr is the nullable form used in API payloads.
func (p Pricing) FeePtr() *int {
	if !p.paid {
		return nil
	}
	fee := p.fee
	return &fee
}

func (p Pricing) String() string {
	if !p.paid {
		return "Free"
	}
	return fmt.Sprintf("₹%d", p.fee)
}

func (p Pricing) Value() (driver.Value, error) {
	if !p.paid {
		return nil, nil
	}
	return int64(p.fee), nil
}

func (p *Pricing) Scan(value any) error {
	var fee int64
	switch v := value.(type) {
	case nil:
		*p = Free()
		return nil
	case int64:
		fee = v
	case int:
		fee = int64(v)
	case float64:
		fee = int64(v)
	case []byte:
		if _, err := fmt.Sscan(string(v), &fee); err != nil {
			return fmt.Errorf("scan pricing: %w", err)
		}
	case string:
		if _, err := fmt.Sscan(v, &fee); err != nil {
			return fmt.Errorf("scan pricing: %w", err)
		}
	default:
		return fmt.Errorf("scan pricing: unsupported type %T", value)
	}
	paid, err := Paid(int(fee))
	if err != nil {
		return fmt.Errorf("scan pricing: %w", err)
	}
	*p = paid
	return nil
}

func (Pricing) GormDataType() string {
	return "int"
}
