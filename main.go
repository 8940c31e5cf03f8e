package main

import "github.com/RemowRamms/Flower-catalog/cmd"

func main() {
	cmd.Execute()
}
