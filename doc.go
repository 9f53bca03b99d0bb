/*
Package spark composes design tokens into layered themes and CSS custom properties.

Tokens are nested, ordered configuration trees (colors, sizes, spacing). A
theme document names the theme it extends; Spark resolves the chain into a
stack of token layers where each descendant is a fork of its parent, and
renders the result as a stylesheet of custom properties.

# Concept

The building blocks live in pkg/ and can be used on their own:

  - tree: ordered objects, YAML/JSON decoding and the explicit-stack walker.
  - merge: the deterministic deep merge used to flatten layers.
  - tokens: the forkable, freezable token store.
  - classnames: the class-name composer for conditional class lists.
  - css: dash-case names, custom property declarations and var() references.

The Engine in this package ties them to a TokenSource (a directory of theme
documents by default) and an optional StylesheetCache.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/spark"
	)

	func main() {
		// Reads ./themes/*.yaml, *.yml and *.json
		eng, err := spark.New("./themes")
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		if err := eng.Validate(ctx); err != nil {
			log.Fatal(err)
		}

		sheet, err := eng.Build(ctx)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(sheet)
	}

# Theme documents

	# dark.yaml
	extends: base
	description: Dark palette
	tokens:
	  color:
	    text: "#eee"
	    background: "#111"

A theme without extends renders under :root; other themes render under
[data-theme="<name>"] unless they set selector explicitly.
*/
package spark
