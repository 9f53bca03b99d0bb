package spark_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/spark"
	"github.com/aretw0/spark/pkg/adapters/memory"
	"github.com/aretw0/spark/pkg/domain"
	"github.com/aretw0/spark/pkg/tree"
)

// ExampleNew_memory demonstrates the Engine over an in-memory source.
func ExampleNew_memory() {
	source, err := memory.NewSource(
		&domain.Theme{
			Name: "base",
			Tokens: tree.Of(
				"color", tree.Of("text", "#111", "background", "#fff"),
				"radius", 4,
			),
		},
		&domain.Theme{
			Name:    "dark",
			Extends: "base",
			Tokens:  tree.Of("color", tree.Of("text", "#eee")),
		},
	)
	if err != nil {
		log.Fatal(err)
	}

	eng, err := spark.New("", spark.WithSource(source))
	if err != nil {
		log.Fatal(err)
	}

	sheet, err := eng.Build(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(sheet)

	// Output:
	// :root {
	//   --spark-color-text: #111;
	//   --spark-color-background: #fff;
	//   --spark-radius: 4;
	// }
	//
	// [data-theme="dark"] {
	//   --spark-color-text: #eee;
	//   --spark-color-background: #fff;
	//   --spark-radius: 4;
	// }
}

// ExampleEngine_References shows var() references for use in component styles.
func ExampleEngine_References() {
	source, _ := memory.NewSource(&domain.Theme{
		Name:   "base",
		Tokens: tree.Of("buttonGroup", tree.Of("gap", "8px")),
	})
	eng, _ := spark.New("", spark.WithSource(source), spark.WithPrefix("ui"))

	refs, err := eng.References(context.Background(), "base")
	if err != nil {
		log.Fatal(err)
	}
	gap, _ := refs.Lookup("buttonGroup", "gap")
	fmt.Println(gap)

	// Output:
	// var(--ui-button-group-gap)
}
