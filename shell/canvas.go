package shell

import "go-fretboard/theme"

// Role names what a cell shows so the renderer can pick colours
type Role int

const (
	RoleBackground Role = iota
	RoleButton
	RoleButtonText
	RoleWood
	RoleFret
	RoleString
	RoleNote
	RoleText
)

// Surface is what the draw routines paint on
type Surface interface {
	Clear()
	FillRect(r Rect, role Role)
	FillPolygon(pts []Point, role Role)
	DrawLine(a, b Point, width int, role Role)
	DrawText(center Point, text string, role Role)
}

// Cell is one terminal character of the canvas
type Cell struct {
	Rune rune
	Fore Role
	Back Role
}

// Canvas is a Surface backed by a grid of terminal cells. Each cell covers
// CellW x CellH logical pixels and is considered covered by a shape when
// its centre is.
type Canvas struct {
	CellW, CellH int
	Symbols      theme.Symbols
	cols, rows   int
	cells        [][]Cell
}

// NewCanvas sizes a canvas for a logical window
func NewCanvas(width, height, cellW, cellH int) *Canvas {
	c := &Canvas{
		CellW:   cellW,
		CellH:   cellH,
		Symbols: theme.DefaultSymbols(),
		cols:    width / cellW,
		rows:    height / cellH,
	}
	c.cells = make([][]Cell, c.rows)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.cols)
	}
	c.Clear()
	return c
}

// Size returns the canvas size in cells
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Cell returns the cell at a column and row
func (c *Canvas) Cell(col, row int) Cell {
	if !c.inside(col, row) {
		return Cell{}
	}
	return c.cells[row][col]
}

// Lines returns the canvas runes, one string per row
func (c *Canvas) Lines() []string {
	lines := make([]string, c.rows)
	for y, row := range c.cells {
		runes := make([]rune, len(row))
		for x, cell := range row {
			runes[x] = cell.Rune
		}
		lines[y] = string(runes)
	}
	return lines
}

// ToLogical maps a cell to the logical pixel at its centre
func (c *Canvas) ToLogical(col, row int) Point {
	return Point{col*c.CellW + c.CellW/2, row*c.CellH + c.CellH/2}
}

func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' ', Fore: RoleText, Back: RoleBackground}
		}
	}
}

func (c *Canvas) FillRect(r Rect, role Role) {
	c.fill(role, func(p Point) bool { return r.Contains(p.X, p.Y) })
}

func (c *Canvas) FillPolygon(pts []Point, role Role) {
	c.fill(role, func(p Point) bool { return insidePolygon(pts, p) })
}

// DrawLine draws mostly horizontal lines with the string runes and mostly
// vertical ones with the fret runes, heavy from width 6 up.
func (c *Canvas) DrawLine(a, b Point, width int, role Role) {
	bold := width >= 6
	r := c.Symbols.StringThin
	if bold {
		r = c.Symbols.StringBold
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	if abs(dy)*c.CellW > abs(dx)*c.CellH {
		r = c.Symbols.Fret
		if bold {
			r = c.Symbols.FretBold
		}
	}

	steps := max(abs(dx)/c.CellW, abs(dy)/c.CellH, 1)
	for i := 0; i <= steps; i++ {
		x := a.X + dx*i/steps
		y := a.Y + dy*i/steps
		c.set(x/c.CellW, y/c.CellH, r, role)
	}
}

func (c *Canvas) DrawText(center Point, text string, role Role) {
	runes := []rune(text)
	row := center.Y / c.CellH
	col := center.X/c.CellW - len(runes)/2
	for i, r := range runes {
		c.set(col+i, row, r, role)
	}
}

func (c *Canvas) set(col, row int, r rune, role Role) {
	if !c.inside(col, row) {
		return
	}
	c.cells[row][col].Rune = r
	c.cells[row][col].Fore = role
}

func (c *Canvas) fill(role Role, covered func(Point) bool) {
	for y := range c.cells {
		for x := range c.cells[y] {
			if covered(c.ToLogical(x, y)) {
				c.cells[y][x] = Cell{Rune: ' ', Fore: RoleText, Back: role}
			}
		}
	}
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

// insidePolygon is the even-odd ray casting test
func insidePolygon(pts []Point, p Point) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
	}
	return in
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
