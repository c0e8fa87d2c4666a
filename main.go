package main

import "miniDS/cmd"

func main() {
	cmd.Execute()
}
