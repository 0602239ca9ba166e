// Public domain.

package main

import "github.com/starcat/bsc5conv/internal/convprog"

func main() {
	convprog.Main()
}
