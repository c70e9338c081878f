package main

import (
	"log"

	"github.com/heron-ml/heron/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
