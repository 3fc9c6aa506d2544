package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpad/internal/ink"
	"inkpad/internal/state"
)

func press(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestPadWidgetCapturesGesture(t *testing.T) {
	test.NewApp()
	doc := state.NewDocument()
	board := NewPadWidget(doc)
	win := test.NewWindow(board)
	defer win.Close()
	win.Resize(fyne.NewSize(500, 300))

	var committed []state.Stroke
	board.OnStroke = func(s state.Stroke) { committed = append(committed, s) }

	board.MouseDown(press(10, 10))
	board.Dragged(drag(30, 20))
	board.Dragged(drag(50, 10))
	board.Dragged(drag(70, 25))
	board.DragEnd()

	require.Len(t, committed, 1)
	assert.Len(t, committed[0].Points, 4)
	assert.Equal(t, doc.Site(), committed[0].Owner)
	assert.Equal(t, 1, doc.Len())
	assert.False(t, board.IsEmpty())
}

func TestPadWidgetSecondaryButtonIgnored(t *testing.T) {
	test.NewApp()
	doc := state.NewDocument()
	board := NewPadWidget(doc)

	board.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)},
		Button:     desktop.MouseButtonSecondary,
	})
	board.DragEnd()

	assert.Equal(t, 0, doc.Len())
	assert.True(t, board.IsEmpty())
}

func TestPadWidgetRemoteStrokes(t *testing.T) {
	test.NewApp()
	doc := state.NewDocument()
	board := NewPadWidget(doc)

	remote := state.Stroke{
		ID:    "stroke-peer-1",
		Owner: "peer",
		Pen:   "#c80000",
		Points: ink.PointGroup{
			{X: 5, Y: 5, Time: 1},
		},
	}

	assert.True(t, board.AddRemote(remote))
	assert.False(t, board.AddRemote(remote), "duplicate remote stroke is ignored")
	assert.Equal(t, 1, doc.Len())
	assert.False(t, board.IsEmpty())

	board.ClearOwner("peer")
	assert.Equal(t, 0, doc.Len())
	assert.True(t, board.IsEmpty())
}

func TestPadWidgetTransformAppliesPerEvent(t *testing.T) {
	test.NewApp()
	doc := state.NewDocument()
	board := NewPadWidget(doc)
	board.Transform = func(p fyne.Position) fyne.Position {
		return fyne.NewPos(p.X-100, p.Y-50)
	}

	board.MouseDown(press(105, 55))
	board.DragEnd()

	strokes := doc.Strokes()
	require.Len(t, strokes, 1)
	require.Len(t, strokes[0].Points, 1)
	assert.Equal(t, float32(5), strokes[0].Points[0].X)
	assert.Equal(t, float32(5), strokes[0].Points[0].Y)
}

func TestHexColorRoundTrip(t *testing.T) {
	c := color.NRGBA{R: 0x12, G: 0xab, B: 0xff, A: 255}
	assert.Equal(t, "#12abff", hexColor(c))
	assert.Equal(t, color.Color(c), parseHexColor("#12abff"))

	assert.Equal(t, "#000000", hexColor(nil))
	assert.Equal(t, color.Color(color.Black), parseHexColor("not-a-color"))
}
