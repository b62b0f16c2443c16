// Command unitconv converts measured values between compatible units.
package main

import "github.com/mesh-intelligence/quanta/internal/cli"

func main() {
	cli.Execute()
}
