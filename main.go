package main

import "size-sync/cmd"

func main() {
	cmd.Execute()
}
