// Package render draws the projected repository graph.
//
// [ToDOT] emits an undirected Graphviz document in which edge thickness
// follows the projection weight and labels can carry closeness scores.
// [RenderSVG] lays the document out with the embedded Graphviz from
// goccy/go-graphviz, so no external binary is needed:
//
//	dot := render.ToDOT(g, render.Options{Scores: scores})
//	svg, err := render.RenderSVG(ctx, dot)
package render
