/*
Package domain contains the core domain models and the static tables of the najia engine.

Everything here is pure: the five-phase relations, the sexagenary stem-branch cycle,
the trigram, hexagram, palace and najia catalogs, and the entities a reading is made of.
The tables are package-level values checked once at initialization and never mutated;
accessors hand out copies.

# Key Entities

  - Trigram / Hexagram catalog: the 8 primitives and the 64 King Wen figures.
  - Palace: the eight lineages with their literal World/Response positions.
  - Hexagram: an annotated figure (branch, element, six relative, six spirit per line).
  - Case / Analysis / Reading: the serializable result of one divination.
*/
package domain
