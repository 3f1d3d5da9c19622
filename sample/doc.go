// Package sample builds the linearly spaced grids the figures are drawn on
// and evaluates model functions pointwise over them.
//
// Model functions are scalar; Map and MapErr vectorize them. Non-finite
// results are kept in place (they mark singular points) and Segments splits
// a sampled curve into its finite runs for drawing.
package sample
