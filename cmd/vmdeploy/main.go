package main

import "github.com/optum/vmdeploy/cmd/vmdeploy/cmd"

func main() {
	cmd.Execute()
}
