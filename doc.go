/*
Package najia is a deterministic Na-jia hexagram divination engine.

It turns a seed (three-coin tosses, a sequence of numbers, or a calendar moment) into a
six-line hexagram, annotates every line from fixed classical tables (najia stem and
branch, element, six relative, six spirit, World and Response), derives the transformed
hexagram from the moving lines, and judges the line a question is about against the
month and day pillars of the cast.

# Concept

The engine is a symbolic computation over immutable tables. Given the same seed and the
same instant, a cast always produces the same reading. Randomness enters only through the
coin entropy source, which can be injected or pinned with a seed.

# Key Features

  - Three casting forms: coins, numbers and moment.
  - Full line annotation: palace, generation, najia, six relatives and six spirits.
  - Strength verdict with explicit fallback and multiplicity notes.
  - Optional reading journal (memory, Redis or SQLite) and lifecycle hooks.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/najia"
	)

	func main() {
		eng, err := najia.New()
		if err != nil {
			log.Fatal(err)
		}

		reading, err := eng.CastByNumbers(context.Background(), []int{3, 8}, "Will the new job work out?")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(reading.Case.Original.Name)
		fmt.Println(reading.Analysis.Narrative)
	}
*/
package najia
