package main

import "github.com/emiliopalmerini/policyplot/internal/cli"

func main() {
	cli.Execute()
}
