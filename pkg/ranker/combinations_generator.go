package ranker

type combinationsGenerator interface {
	// Returns every size-element subset of [0, n) as an ascending list of indices, in lexicographic order
	Combinations(n, size int) [][]int

	// Returns every tuple whose j-th element lies in [0, domains[j]), in lexicographic order, such that
	// every constraint holds on every prefix of the tuple. Constraints only see assigned positions,
	// so a violated prefix prunes every tuple that extends it.
	//
	// Example:
	//
	//	generator := newCombinationsGenerator()
	//
	//	tuples := generator.ConstrainedProduct([]int{3, 2}, []func(prefix []int) bool{
	//		func(prefix []int) bool {
	//			// Reject tuples whose first element is 1
	//			return prefix[0] != 1
	//		},
	//	})
	ConstrainedProduct(domains []int, constraints []func(prefix []int) bool) [][]int
}

func newCombinationsGenerator() combinationsGenerator {
	return combinationsGeneratorImplementation{}
}
