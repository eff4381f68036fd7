package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

//go:generate go run generate.go

func main() {
	err := entc.Generate(
		"./schema",
		&gen.Config{
			Target:  "../../gen/ent",
			Package: "github.com/labelworks/annoqueue/gen/ent",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
