package random

import "math/rand"

// Source picks indexes so card selection can be made deterministic in tests.
type Source interface {
	IntN(n int) int
}

type Uniform struct{}

func (Uniform) IntN(n int) int {
	return rand.Intn(n)
}
