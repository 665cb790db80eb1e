// Package dice provides parsing and rendering of dice-formula strings
// ("2d6+3"). The sheet engine only builds and formats formulas; rolling them
// belongs to the dice subsystem that consumes the rendered strings.
package dice

import "fmt"

// Expression represents a parsed dice expression.
//
// Postcondition of Parse: Count >= 0, Sides >= 2 when Count > 0.
type Expression struct {
	Raw      string // original input string
	Count    int    // number of dice; 0 for a flat modifier
	Sides    int    // faces per die
	Modifier int    // flat modifier (may be negative)
}

// String renders the expression in canonical form: "2d6+3", "1d8", "+4".
// A zero-count expression renders as a signed flat modifier.
func (e Expression) String() string {
	if e.Count == 0 {
		return fmt.Sprintf("%+d", e.Modifier)
	}
	if e.Modifier == 0 {
		return fmt.Sprintf("%dd%d", e.Count, e.Sides)
	}
	return fmt.Sprintf("%dd%d%+d", e.Count, e.Sides, e.Modifier)
}

// WithSides returns a copy of e with the die size replaced. Used for
// two-hand die upgrades.
func (e Expression) WithSides(sides int) Expression {
	e.Sides = sides
	e.Raw = ""
	return e
}

// AddDice returns a copy of e with n extra dice of the same size.
//
// Precondition: n >= 0.
func (e Expression) AddDice(n int) Expression {
	e.Count += n
	e.Raw = ""
	return e
}

// AddModifier returns a copy of e with the flat modifier shifted by m.
func (e Expression) AddModifier(m int) Expression {
	e.Modifier += m
	e.Raw = ""
	return e
}
