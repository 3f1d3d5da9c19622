// Package plots turns the dichalcogenide models into figures.
//
// A figure is plain data: a Figure value lists its curves (Series),
// reference lines (Line) and text (Label). Builders such as Bands,
// OpticalDichroism, BerryCurvature and Transitions sample the models and
// fill a Figure; a single Renderer draws any Figure with gonum/plot and
// exports it to <dir>/<name>.<format> for every configured format.
//
// Samples that are NaN or ±Inf (for example the λk = 0 point of a curve
// with vanishing pairing) split a curve into separate segments instead of
// failing the render.
//
// Example:
//
//	d, _ := dichalcogenide.New(nil, "wse2", "")
//	fig, _ := plots.Bands(d, plots.DefaultBandsOptions())
//	paths, err := plots.NewRenderer(plots.WithDir("build")).Save(fig)
package plots
