package tess

import "github.com/gogpu/nvg/geom"

// LineCap specifies the shape of open subpath endpoints.
type LineCap uint8

const (
	// LineCapButt ends the stroke flush with the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a half circle.
	LineCapRound
	// LineCapSquare extends the stroke by half its width past the endpoint.
	LineCapSquare
)

// String returns the cap name.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapRound:
		return "Round"
	case LineCapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// LineJoin specifies how stroke segments meet at corners.
type LineJoin uint8

const (
	// LineJoinMiter extends the outer edges to a sharp point.
	LineJoinMiter LineJoin = iota
	// LineJoinRound fills the corner with an arc.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel
)

// String returns the join name.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "Miter"
	case LineJoinRound:
		return "Round"
	case LineJoinBevel:
		return "Bevel"
	default:
		return "Unknown"
	}
}

// Solidity is the winding intent of a subpath.
type Solidity uint8

const (
	// Solid subpaths are wound counter-clockwise (positive area).
	Solid Solidity = iota
	// Hole subpaths are wound clockwise (negative area).
	Hole
)

// String returns the solidity name.
func (s Solidity) String() string {
	if s == Hole {
		return "Hole"
	}
	return "Solid"
}

// Vertex is a position with texture coordinates. For fills and strokes,
// U runs across the stroke and V carries fringe coverage; for text and
// image triangles they address the bound texture.
type Vertex struct {
	X, Y, U, V float32
}

// CommandKind identifies a path command.
type CommandKind uint8

const (
	// CmdMoveTo starts a new subpath at Pts[0].
	CmdMoveTo CommandKind = iota
	// CmdLineTo adds a straight segment to Pts[0].
	CmdLineTo
	// CmdBezierTo adds a cubic segment with controls Pts[0], Pts[1] ending at Pts[2].
	CmdBezierTo
	// CmdClose closes the current subpath.
	CmdClose
	// CmdSolidity sets the winding of the current subpath.
	CmdSolidity
)

// Command is one path-building instruction in device space.
type Command struct {
	Kind     CommandKind
	Pts      [3]geom.Point
	Solidity Solidity
}

// MoveTo returns a CmdMoveTo command.
func MoveTo(p geom.Point) Command {
	return Command{Kind: CmdMoveTo, Pts: [3]geom.Point{p}}
}

// LineTo returns a CmdLineTo command.
func LineTo(p geom.Point) Command {
	return Command{Kind: CmdLineTo, Pts: [3]geom.Point{p}}
}

// BezierTo returns a CmdBezierTo command.
func BezierTo(c1, c2, p geom.Point) Command {
	return Command{Kind: CmdBezierTo, Pts: [3]geom.Point{c1, c2, p}}
}

// Close returns a CmdClose command.
func Close() Command {
	return Command{Kind: CmdClose}
}

// Winding returns a CmdSolidity command.
func Winding(s Solidity) Command {
	return Command{Kind: CmdSolidity, Solidity: s}
}

type pointFlags uint8

const (
	ptCorner     pointFlags = 0x1
	ptLeft       pointFlags = 0x2
	ptBevel      pointFlags = 0x4
	ptInnerBevel pointFlags = 0x8
)

// vpoint is a flattened path point with its outgoing segment direction d,
// segment length, and miter direction dm.
type vpoint struct {
	xy    geom.Point
	d     geom.Point
	len   float32
	dm    geom.Point
	flags pointFlags
}

func (p *vpoint) has(f pointFlags) bool { return p.flags&f != 0 }

// Path is one flattened subpath and its expanded geometry.
type Path struct {
	first    int
	count    int
	closed   bool
	nbevel   int
	solidity Solidity
	convex   bool

	verts     []Vertex
	fillOff   int
	fillLen   int
	strokeOff int
	strokeLen int
}

// Fill returns the fill fan vertices. The slice aliases the cache arena.
func (p *Path) Fill() []Vertex {
	if p.fillLen == 0 {
		return nil
	}
	return p.verts[p.fillOff : p.fillOff+p.fillLen : p.fillOff+p.fillLen]
}

// Stroke returns the stroke (or fill fringe) strip vertices. The slice
// aliases the cache arena.
func (p *Path) Stroke() []Vertex {
	if p.strokeLen == 0 {
		return nil
	}
	return p.verts[p.strokeOff : p.strokeOff+p.strokeLen : p.strokeOff+p.strokeLen]
}

// Count returns the number of flattened points.
func (p *Path) Count() int { return p.count }

// Closed reports whether the subpath is closed.
func (p *Path) Closed() bool { return p.closed }

// Convex reports whether every corner of the subpath turns the same way.
func (p *Path) Convex() bool { return p.convex }

// Bevels returns the number of points needing bevel or round treatment.
func (p *Path) Bevels() int { return p.nbevel }

// Solidity returns the subpath winding intent.
func (p *Path) Solidity() Solidity { return p.solidity }
