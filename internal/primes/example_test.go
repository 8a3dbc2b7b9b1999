package primes

import (
	"context"
	"fmt"
)

func ExampleIsPrime() {
	for _, n := range []int64{0, 1, 2, 3, 4, 97, 100} {
		fmt.Println(n, IsPrime(n))
	}
	// Output:
	// 0 false
	// 1 false
	// 2 true
	// 3 true
	// 4 false
	// 97 true
	// 100 false
}

func ExamplePartition() {
	for _, c := range Partition(10, 4) {
		fmt.Printf("[%d, %d) ", c.From, c.To)
	}
	fmt.Println()
	// Output:
	// [0, 3) [3, 6) [6, 9) [9, 10)
}

func ExampleParallel_Count() {
	numbers := []int64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	res := NewParallel(3).Count(context.Background(), numbers, nil)
	fmt.Println(res.Count, res.Partials)
	// Output:
	// 5 [3 1 1]
}
