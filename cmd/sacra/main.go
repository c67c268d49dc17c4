// Command sacra rates a calendar moment by combining a long-count calendar
// position, an I Ching hexagram, a digit of π and a Fibonacci term.
package main

import "github.com/aristath/sacra/internal/cli"

func main() {
	cli.Execute()
}
