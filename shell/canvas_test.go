package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-fretboard/theme"
)

func TestCanvasFillRectUsesCellCentres(t *testing.T) {
	c := NewCanvas(100, 100, 10, 20)
	c.FillRect(Rect{10, 20, 20, 20}, RoleButton)

	assert := assert.New(t)
	assert.Equal(RoleButton, c.Cell(1, 1).Back)
	assert.Equal(RoleButton, c.Cell(2, 1).Back)
	assert.Equal(RoleBackground, c.Cell(3, 1).Back)
	assert.Equal(RoleBackground, c.Cell(1, 0).Back)
}

func TestCanvasPolygon(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)
	c.FillPolygon([]Point{{0, 0}, {100, 0}, {0, 100}}, RoleWood)

	assert := assert.New(t)
	assert.Equal(RoleWood, c.Cell(0, 0).Back)
	assert.Equal(RoleWood, c.Cell(2, 2).Back)
	assert.Equal(RoleBackground, c.Cell(9, 9).Back)
}

func TestCanvasLineAndText(t *testing.T) {
	c := NewCanvas(100, 40, 10, 20)
	c.FillRect(Rect{0, 0, 100, 40}, RoleWood)
	c.DrawLine(Point{0, 25}, Point{100, 25}, 8, RoleString)
	c.DrawText(Point{50, 5}, "abc", RoleNote)

	assert := assert.New(t)
	assert.Equal([]string{"    abc   ", "━━━━━━━━━━"}, c.Lines())
	assert.Equal(Cell{Rune: 'a', Fore: RoleNote, Back: RoleWood}, c.Cell(4, 0))
	assert.Equal(RoleString, c.Cell(0, 1).Fore)
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	c := NewCanvas(30, 20, 10, 20)
	c.DrawText(Point{0, 0}, "hello", RoleText)
	c.DrawText(Point{0, 500}, "gone", RoleText)
	assert.Equal(t, []string{"llo"}, c.Lines())
	assert.Equal(t, Cell{}, c.Cell(-1, 0))
}

func TestCanvasDrawsWithSymbols(t *testing.T) {
	c := NewCanvas(100, 100, 10, 20)
	c.Symbols = theme.Symbols{Fill: '.', StringThin: '-', StringBold: '=', Fret: '|', FretBold: '#'}
	c.Clear()
	c.DrawLine(Point{0, 10}, Point{100, 10}, 2, RoleString)
	c.DrawLine(Point{0, 30}, Point{100, 30}, 8, RoleString)
	c.DrawLine(Point{5, 40}, Point{5, 100}, 2, RoleFret)
	c.DrawLine(Point{95, 40}, Point{95, 100}, 8, RoleFret)

	assert.Equal(t, []string{
		"----------",
		"==========",
		"|........#",
		"|........#",
		"|........#",
	}, c.Lines())
}
