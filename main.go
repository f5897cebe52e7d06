package main

import (
	"log"

	"github.com/cliffordnwanna/job-hunter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
