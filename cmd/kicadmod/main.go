package main

import "github.com/OpenTraceLab/kicadmod/cmd/kicadmod/cmd"

func main() {
	cmd.Execute()
}
