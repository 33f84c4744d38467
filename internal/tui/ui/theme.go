package ui

import "github.com/gdamore/tcell/v2"

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor           tcell.Color
	FgColor           tcell.Color
	MutedColor        tcell.Color
	BorderColor       tcell.Color
	BorderFocusColor  tcell.Color
	TableHeaderFg     tcell.Color
	TableHeaderBg     tcell.Color
	TableCursorFg     tcell.Color
	TableCursorBg     tcell.Color
	CrumbActiveFg     tcell.Color
	CrumbActiveBg     tcell.Color
	CrumbInactiveFg   tcell.Color
	CrumbInactiveBg   tcell.Color
	MenuKeyColor      tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	FlashErrColor     tcell.Color
	PromptBorderColor tcell.Color
	TabActiveFg       tcell.Color
	TabActiveBg       tcell.Color
	RevealFg          tcell.Color
	RevealBg          tcell.Color
	OutgoingColor     tcell.Color
	IncomingColor     tcell.Color
	GroupMarkerColor  tcell.Color
}

// DefaultTheme returns a dark theme with a green accent.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:           tcell.ColorBlack,
		FgColor:           tcell.ColorWhiteSmoke,
		MutedColor:        tcell.ColorGray,
		BorderColor:       tcell.ColorSeaGreen,
		BorderFocusColor:  tcell.ColorMediumSpringGreen,
		TableHeaderFg:     tcell.ColorWhite,
		TableHeaderBg:     tcell.ColorBlack,
		TableCursorFg:     tcell.ColorBlack,
		TableCursorBg:     tcell.ColorMediumSeaGreen,
		CrumbActiveFg:     tcell.ColorBlack,
		CrumbActiveBg:     tcell.ColorMediumSpringGreen,
		CrumbInactiveFg:   tcell.ColorBlack,
		CrumbInactiveBg:   tcell.ColorDarkSeaGreen,
		MenuKeyColor:      tcell.ColorMediumSeaGreen,
		TitleColor:        tcell.ColorMediumSpringGreen,
		CounterColor:      tcell.ColorPapayaWhip,
		FlashInfoColor:    tcell.ColorNavajoWhite,
		FlashWarnColor:    tcell.ColorOrange,
		FlashErrColor:     tcell.ColorOrangeRed,
		PromptBorderColor: tcell.ColorMediumSeaGreen,
		TabActiveFg:       tcell.ColorBlack,
		TabActiveBg:       tcell.ColorMediumSpringGreen,
		RevealFg:          tcell.ColorWhite,
		RevealBg:          tcell.ColorSlateGray,
		OutgoingColor:     tcell.ColorLightGreen,
		IncomingColor:     tcell.ColorLightSkyBlue,
		GroupMarkerColor:  tcell.ColorFuchsia,
	}
}

// Tag returns the dynamic-color tag name of c.
func Tag(c tcell.Color) string {
	return colorName(c)
}
