//go:build l1miss_debug

package tags

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
