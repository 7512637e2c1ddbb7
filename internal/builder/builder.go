package builder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// HouseBuilder builds one House. Each step sets exactly one field.
type HouseBuilder interface {
	BuildBasement()
	BuildStructure()
	BuildRoof()
	BuildInterior()
	// House returns the instance under construction, not a copy.
	House() *House
}

// Variant names a HouseBuilder implementation.
type Variant string

const (
	VariantIgloo Variant = "igloo"
	VariantStone Variant = "stone"
)

// Variants lists every known builder variant.
var Variants = []Variant{VariantIgloo, VariantStone}

// ErrUnknownVariant is returned for variants with no builder.
var ErrUnknownVariant = errors.New("unknown house variant")

// ParseVariant maps a case-insensitive name to a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Variants {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// New returns a fresh builder for v.
func New(v Variant) (HouseBuilder, error) {
	switch v {
	case VariantIgloo:
		return NewIglooBuilder(), nil
	case VariantStone:
		return NewStoneHouseBuilder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
}

// IglooBuilder builds houses out of ice.
type IglooBuilder struct {
	house *House
}

func NewIglooBuilder() *IglooBuilder {
	return &IglooBuilder{house: &House{}}
}

func (b *IglooBuilder) BuildBasement()  { b.house.Basement = "Ice bars" }
func (b *IglooBuilder) BuildStructure() { b.house.Structure = "Ice blocks" }
func (b *IglooBuilder) BuildRoof()      { b.house.Roof = "Ice dome" }
func (b *IglooBuilder) BuildInterior()  { b.house.Interior = "Ice carvings" }
func (b *IglooBuilder) House() *House   { return b.house }

// StoneHouseBuilder builds conventional stone houses.
type StoneHouseBuilder struct {
	house *House
}

func NewStoneHouseBuilder() *StoneHouseBuilder {
	return &StoneHouseBuilder{house: &House{}}
}

func (b *StoneHouseBuilder) BuildBasement()  { b.house.Basement = "Concrete foundation" }
func (b *StoneHouseBuilder) BuildStructure() { b.house.Structure = "Stone walls" }
func (b *StoneHouseBuilder) BuildRoof()      { b.house.Roof = "Wooden roof" }
func (b *StoneHouseBuilder) BuildInterior() {
	b.house.Interior = "Plastered interior with heating"
}
func (b *StoneHouseBuilder) House() *House { return b.house }

var (
	_ HouseBuilder = (*IglooBuilder)(nil)
	_ HouseBuilder = (*StoneHouseBuilder)(nil)
)

// isNil also catches a nil pointer stored in a HouseBuilder interface.
func isNil(b HouseBuilder) bool {
	if b == nil {
		return true
	}
	v := reflect.ValueOf(b)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
