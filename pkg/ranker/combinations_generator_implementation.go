package ranker

type combinationsGeneratorImplementation struct{}

func (generator combinationsGeneratorImplementation) Combinations(n, size int) [][]int {
	if size < 0 || size > n {
		return [][]int{}
	}
	combinations := [][]int{}
	generator.combinations(n, size, 0, make([]int, 0, size), &combinations)
	return combinations
}

func (generator combinationsGeneratorImplementation) combinations(n, size, next int, combination []int, combinations *[][]int) {
	if len(combination) == size {
		combinationCopy := make([]int, size)
		copy(combinationCopy, combination)
		*combinations = append(*combinations, combinationCopy)
		return
	}

	// Leave room for the elements still missing
	for i := next; i <= n-(size-len(combination)); i++ {
		generator.combinations(n, size, i+1, append(combination, i), combinations)
	}
}

func (generator combinationsGeneratorImplementation) ConstrainedProduct(domains []int, constraints []func(prefix []int) bool) [][]int {
	tuples := [][]int{}
	generator.constrainedProduct(constraints, domains, 0, make([]int, len(domains)), &tuples)
	return tuples
}

func (generator combinationsGeneratorImplementation) constrainedProduct(
	constraints []func(prefix []int) bool,
	domains []int,
	currentDomain int,
	tuple []int,
	tuples *[][]int) {

	if currentDomain >= len(domains) {
		tupleCopy := make([]int, len(tuple))
		copy(tupleCopy, tuple)
		*tuples = append(*tuples, tupleCopy)
		return
	}

	for i := 0; i < domains[currentDomain]; i++ {
		tuple[currentDomain] = i
		constraintViolated := false
		for _, constraint := range constraints {
			if !constraint(tuple[:currentDomain+1]) {
				constraintViolated = true
				break
			}
		}

		if constraintViolated {
			continue
		}

		generator.constrainedProduct(constraints, domains, currentDomain+1, tuple, tuples)
	}
}
