package main

import "github.com/hoosat-labs/hrc20-engine/cmd/hrc20engine"

func main() {
	hrc20engine.Execute()
}
