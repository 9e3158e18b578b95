package gui

// Spacing constants for consistent layout.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// Style defines the visual appearance of UI elements.
type Style struct {
	// BodyTextStyle is used by widgets that don't pick a text style.
	BodyTextStyle TextStyle

	Spacing Spacing
	Visuals Visuals
}

// Spacing holds sizes used when laying widgets out.
type Spacing struct {
	// ItemSpacing is the gap between consecutive widgets.
	ItemSpacing float32

	// TextEditWidth is the width of text editors that don't set one.
	TextEditWidth float32
}

// Visuals holds colors and strokes.
type Visuals struct {
	Widgets Widgets

	// DarkBgColor fills the background of text editors.
	DarkBgColor uint32

	// OverrideTextColor, when non-zero, replaces the per-state text color.
	OverrideTextColor uint32

	// CursorBlinkHz is the caret blink frequency. 0 keeps it always on.
	CursorBlinkHz float32

	TextCursorWidth float32
	TextCursorColor uint32
}

// Widgets groups the visuals for each interaction state.
type Widgets struct {
	Inactive WidgetVisuals
	Hovered  WidgetVisuals
	Active   WidgetVisuals
}

// WidgetVisuals describes how a widget looks in one interaction state.
type WidgetVisuals struct {
	BgFill       uint32
	BgStroke     Stroke
	CornerRadius float32

	// FgStroke colors text and foreground lines.
	FgStroke Stroke
}

// TextColor is the color text is drawn with.
func (v WidgetVisuals) TextColor() uint32 {
	return v.FgStroke.Color
}

// Interact picks the visuals matching a widget's response: active wins over
// hovered, which wins over inactive.
func (s *Style) Interact(resp Response) WidgetVisuals {
	switch {
	case resp.Active:
		return s.Visuals.Widgets.Active
	case resp.Hovered:
		return s.Visuals.Widgets.Hovered
	default:
		return s.Visuals.Widgets.Inactive
	}
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		BodyTextStyle: TextStyleBody,
		Spacing: Spacing{
			ItemSpacing:   SpaceSM,
			TextEditWidth: 280,
		},
		Visuals: Visuals{
			Widgets: Widgets{
				Inactive: WidgetVisuals{
					BgFill:       RGBA(70, 70, 70, 255),
					BgStroke:     Stroke{Width: 1, Color: RGBA(60, 60, 60, 255)},
					CornerRadius: 4,
					FgStroke:     Stroke{Width: 1, Color: RGBA(160, 160, 160, 255)},
				},
				Hovered: WidgetVisuals{
					BgFill:       RGBA(80, 80, 80, 255),
					BgStroke:     Stroke{Width: 1, Color: RGBA(150, 150, 150, 255)},
					CornerRadius: 4,
					FgStroke:     Stroke{Width: 1.5, Color: RGBA(240, 240, 240, 255)},
				},
				Active: WidgetVisuals{
					BgFill:       RGBA(90, 90, 90, 255),
					BgStroke:     Stroke{Width: 1, Color: ColorWhite},
					CornerRadius: 4,
					FgStroke:     Stroke{Width: 2, Color: ColorWhite},
				},
			},
			DarkBgColor:     RGBA(10, 10, 10, 255),
			CursorBlinkHz:   1,
			TextCursorWidth: 2,
			TextCursorColor: ColorWhite,
		},
	}
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.Visuals.Widgets = Widgets{
		Inactive: WidgetVisuals{
			BgFill:       RGBA(220, 220, 220, 255),
			BgStroke:     Stroke{Width: 1, Color: RGBA(190, 190, 190, 255)},
			CornerRadius: 4,
			FgStroke:     Stroke{Width: 1, Color: RGBA(60, 60, 60, 255)},
		},
		Hovered: WidgetVisuals{
			BgFill:       RGBA(200, 200, 200, 255),
			BgStroke:     Stroke{Width: 1, Color: RGBA(120, 120, 120, 255)},
			CornerRadius: 4,
			FgStroke:     Stroke{Width: 1.5, Color: RGBA(20, 20, 20, 255)},
		},
		Active: WidgetVisuals{
			BgFill:       RGBA(180, 180, 180, 255),
			BgStroke:     Stroke{Width: 1, Color: RGBA(0, 120, 215, 255)},
			CornerRadius: 4,
			FgStroke:     Stroke{Width: 2, Color: ColorBlack},
		},
	}
	s.Visuals.DarkBgColor = RGBA(250, 250, 250, 255)
	s.Visuals.TextCursorColor = RGBA(20, 20, 20, 255)
	return s
}
