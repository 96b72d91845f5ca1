package text

// Surface is the rendering target for the typing test. Positions are zero-based
// (row, column) cells. WriteStyled draws at the surface cursor and moves it right
// by the fragment's plain length.
type Surface interface {
	ClearAndHome() error
	WriteStyled(f Fragment) error
	MoveCursorTo(row, col int) error
	HideCursor() error
	ShowCursor() error
	Flush() error
	Dimensions() (width, height int)
}
