package main

import "github.com/ucp4496/data-collection-pipeline/cmd"

func main() {
	cmd.Execute()
}
