// Command linecalc sizes the equipment of a two-shift dumpling production line.
// All command handling lives in package cmd.
package main

import "github.com/pelmeni-line/linecalc/cmd"

func main() {
	cmd.Execute()
}
