// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

// Literal is a variable together with its polarity: Neg == false means the
// positive literal, Neg == true means the negative literal.
type Literal struct {
	Var VarLabel
	Neg bool
}

// Clause is a disjunction of literals.
type Clause []Literal

// Cnf is a conjunction of clauses: the conjunctive-normal-form formula
// FromCnf compiles into a BDD. Grounded on
// original_source/src/bench/rand_cnf.rs's Cnf type; unlike the original,
// this package does not include a CNF parser or random generator — only
// the compilation step, since those remain out of scope (spec Non-goals).
type Cnf struct {
	Clauses []Clause
}

// FromCnf compiles cnf into a BDD by repeated Apply calls: each clause
// becomes a disjunction of literal handles, and the clauses are conjoined.
// Grounded on original_source/src/bench/rand_cnf.rs's `man.from_cnf(&cnf)`.
func (m *BddManager) FromCnf(cnf Cnf) (BddPtr, error) {
	acc := BddTrue
	for _, clause := range cnf.Clauses {
		c, err := m.compileClause(clause)
		if err != nil {
			return 0, err
		}
		acc, err = m.Apply(OpAnd, acc, c)
		if err != nil {
			return 0, err
		}
	}
	return acc, nil
}

func (m *BddManager) compileClause(clause Clause) (BddPtr, error) {
	acc := BddFalse
	for _, lit := range clause {
		p, err := m.Ithvar(lit.Var)
		if err != nil {
			return 0, err
		}
		if lit.Neg {
			p = p.Neg()
		}
		acc, err = m.Apply(OpOr, acc, p)
		if err != nil {
			return 0, err
		}
	}
	return acc, nil
}
