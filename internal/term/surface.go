package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Surface draws the animation on a single centered line of a tcell screen.
type Surface struct {
	screen      tcell.Screen
	textStyle   tcell.Style
	cursorStyle tcell.Style

	// width of the widest text; keeps the line anchored while the text
	// grows and shrinks
	anchor int

	text   string
	cursor string
	hidden bool
}

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{
		screen:      screen,
		textStyle:   tcell.StyleDefault.Bold(true),
		cursorStyle: tcell.StyleDefault.Bold(true).Foreground(tcell.ColorBlue),
	}
}

func (s *Surface) Anchor(texts []string) {
	s.anchor = 0
	for _, text := range texts {
		s.anchor = max(s.anchor, uniseg.StringWidth(text))
	}
}

func (s *Surface) Mount(cursor string) {
	s.text = ""
	s.cursor = cursor
	s.hidden = false
	s.screen.Clear()
	s.draw()
}

func (s *Surface) SetText(text string) {
	s.text = text
	s.draw()
}

func (s *Surface) SetCursorHidden(hidden bool) {
	s.hidden = hidden
	s.draw()
}

func (s *Surface) Text() string {
	return s.text
}

// Origin is the cell where the text starts.
func (s *Surface) Origin() (int, int) {
	w, h := s.screen.Size()
	width := max(s.anchor, uniseg.StringWidth(s.text)) + uniseg.StringWidth(s.cursor)
	return max(0, (w-width)/2), h / 2
}

func (s *Surface) draw() {
	w, _ := s.screen.Size()
	x, y := s.Origin()

	for i := range w {
		s.screen.SetContent(i, y, ' ', nil, tcell.StyleDefault)
	}

	x = s.put(x, y, s.text, s.textStyle)
	if s.cursor != "" && !s.hidden {
		s.put(x, y, s.cursor, s.cursorStyle)
	}

	s.screen.Show()
}

func (s *Surface) put(x, y int, str string, style tcell.Style) int {
	g := uniseg.NewGraphemes(str)
	for g.Next() {
		runes := g.Runes()
		s.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += max(1, g.Width())
	}
	return x
}
