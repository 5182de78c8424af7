package main

import "github.com/jobline-sh/jobline/cmd"

func main() {
	cmd.Execute()
}
