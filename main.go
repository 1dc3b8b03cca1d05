package main

import "github.com/chrisdamba/dishstats/cmd"

func main() {
	cmd.Execute()
}
