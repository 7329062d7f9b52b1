package model

import (
	"fmt"
	"strconv"
)

// Quantity is how many of an item to pack. Only the values in Quantities
// are offered by the add form.
type Quantity int

const (
	QuantityOne   Quantity = 1
	QuantityTwo   Quantity = 2
	QuantityThree Quantity = 3
)

// Quantities is the closed set the quantity selector cycles through.
var Quantities = []Quantity{QuantityOne, QuantityTwo, QuantityThree}

// DefaultQuantity is what the add form starts with and resets to.
const DefaultQuantity = QuantityOne

func (q Quantity) String() string { return strconv.Itoa(int(q)) }

func (q Quantity) Valid() bool {
	return q >= QuantityOne && q <= QuantityThree
}

// ParseQuantity accepts the selector's text values "1", "2" and "3".
func ParseQuantity(s string) (Quantity, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("quantity: not a number: %q", s)
	}
	q := Quantity(n)
	if !q.Valid() {
		return 0, fmt.Errorf("quantity: out of range: %d", n)
	}
	return q, nil
}

// Item is one entry in the packing list. Items are values: toggling
// produces a copy with the same ID.
type Item struct {
	ID          int64    `json:"id"`
	Description string   `json:"description"`
	Quantity    Quantity `json:"quantity"`
	Packed      bool     `json:"packed"`
}

// Label is the row text, e.g. "Socks (2)".
func (i Item) Label() string {
	return fmt.Sprintf("%s (%s)", i.Description, i.Quantity)
}
