package main

import "manifest-sync/cmd"

func main() {
	cmd.Execute()
}
