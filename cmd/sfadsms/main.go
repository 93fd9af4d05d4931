package main

import "sfadsms/cmd/sfadsms/cmd"

func main() {
	cmd.Execute()
}
