package main

import "github.com/helpdeskhq/portal-core/cmd"

func main() {
	cmd.Execute()
}
