// Package render draws generated topologies.
//
// The pipeline is: compute a layered layout for the graph, emit Graphviz DOT
// with pinned node positions ([ToDOT]), rasterize the DOT to SVG with
// Graphviz's neato engine ([RenderSVG]), and convert to PDF or PNG via the
// external rsvg-convert tool ([ToPDF], [ToPNG]). [DrawTopology] runs the
// whole pipeline and writes a file named from the topology's descriptor.
//
// Capacities, when set on an edge, are rendered as edge head-labels.
//
// PDF and PNG output requires librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
package render
