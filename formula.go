package qsat

import "fmt"

// Literal is one occurrence of a boolean variable inside a clause.
// Negated marks the literal as ¬x rather than x.
type Literal struct {
	Var     int
	Negated bool
}

// True reports whether the literal holds under an assignment bitmask,
// where bit v of the mask is the value of variable v.
func (l Literal) True(assignment uint) bool {
	set := assignment&(1<<l.Var) != 0
	return set != l.Negated
}

// Clause is an ordered triple of literals.
type Clause [3]Literal

/*
Satisfied reports whether EXACTLY ONE of the clause's literals is true
under the assignment. This is deliberately stricter than conventional
3-SAT disjunction: a clause with two or three true literals does not
count. The oracle circuit implements the same rule, so the classical and
quantum views of the formula always agree.
*/
func (c Clause) Satisfied(assignment uint) bool {
	trues := 0
	for _, l := range c {
		if l.True(assignment) {
			trues++
		}
	}
	return trues == 1
}

// Formula is an ordered conjunction of clauses.
type Formula []Clause

// Validate checks every literal against the input register size.
func (f Formula) Validate(numVars int) error {
	if len(f) == 0 {
		return ErrEmptyFormula
	}
	for ci, c := range f {
		for li, l := range c {
			if l.Var < 0 || l.Var >= numVars {
				return fmt.Errorf("%w: clause %d references x%d, register holds %d variables",
					ErrVariableOutOfRange, ci, l.Var+1, numVars)
			}
			for _, prev := range c[:li] {
				if prev.Var == l.Var {
					return fmt.Errorf("%w: clause %d repeats x%d", ErrRepeatedVariable, ci, l.Var+1)
				}
			}
		}
	}
	return nil
}

// Satisfied reports whether every clause has exactly one true literal.
func (f Formula) Satisfied(assignment uint) bool {
	for _, c := range f {
		if !c.Satisfied(assignment) {
			return false
		}
	}
	return true
}

// Solutions enumerates all satisfying assignments over numVars variables.
// The count feeds the Grover iteration formula; the enumeration is
// exponential but so is the simulation itself.
func (f Formula) Solutions(numVars int) []uint {
	var solutions []uint
	for a := uint(0); a < uint(1)<<numVars; a++ {
		if f.Satisfied(a) {
			solutions = append(solutions, a)
		}
	}
	return solutions
}
