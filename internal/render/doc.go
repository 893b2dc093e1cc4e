/*
Package render writes Graphviz DOT views of a resolved application.

Four views are produced:

  - Application: every function occurrence clustered by state and thread,
    plus an unconnected cluster listing every data source.
  - State: the same clustering restricted to one state, with signal edges
    between functions and the data sources they actually reference.
  - State machine: states with their entry actions, and one labeled edge per
    transition.
  - Objects: a generic rendering of one top-level configuration node, where
    every classed node becomes a cluster when it has classed children and a
    leaf otherwise.

All views iterate slices only, so identical input always produces
byte-identical output. Colors and font sizes come from Style and have no
structural meaning.
*/
package render
