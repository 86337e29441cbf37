// Public domain.

package main

import "github.com/soniakeys/epochdiag/internal/edprog"

func main() {
	edprog.Main()
}
