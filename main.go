package main

import "github.com/dotcommander/greenseal/cmd"

func main() {
	cmd.Execute()
}
