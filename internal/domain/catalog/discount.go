package catalog

import "strings"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

type DiscountCode struct {
	code     string
	typ      DiscountType
	value    float64
	isActive bool
}

func NewDiscountCode(code string, typ string, value float64, isActive bool) (*DiscountCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidDiscountCode
	}
	t := DiscountType(typ)
	if !t.IsValid() {
		return nil, ErrInvalidDiscountType
	}
	if value < 0 || (t == DiscountPercentage && value > 100) {
		return nil, ErrInvalidValue
	}
	return &DiscountCode{code: code, typ: t, value: value, isActive: isActive}, nil
}

func (d *DiscountCode) Code() string       { return d.code }
func (d *DiscountCode) Type() DiscountType { return d.typ }
func (d *DiscountCode) Value() float64     { return d.value }
func (d *DiscountCode) IsActive() bool     { return d.isActive }
