package main

import "github.com/structcalc/beamcap/cmd"

func main() {
	cmd.Execute()
}
