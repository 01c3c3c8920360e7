package device

import "golang.org/x/exp/rand"

func randi32(a []int32) {
	for i := range a {
		a[i] = rand.Int31()
	}
}

func alloci32(n int) []int32 {
	return make([]int32, n)
}
