package main

import "github.com/avocado-lion/JEMM-Carbon-Scalibility-Tool/cmd"

func main() {
	cmd.Execute()
}
