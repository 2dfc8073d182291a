package main

import "Reelist/cmd"

func main() {
	cmd.Execute()
}
