package entities

import "github.com/google/uuid"

type Drink struct {
	ID    uuid.UUID
	Name  string
	Milk  Milk
	Size  Size
	Price Money
}

type Milk string

const (
	MilkSemi    Milk = "Semi"
	MilkWhole   Milk = "Whole"
	MilkSkimmed Milk = "Skimmed"
	MilkSoy     Milk = "Soy"
)

func (m Milk) String() string {
	return string(m)
}

type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

func (s Size) String() string {
	return string(s)
}
