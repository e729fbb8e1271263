package display

// Surface names a display surface
type Surface string

const (
	SurfacePanel   Surface = "panel"
	SurfaceOverlay Surface = "overlay"
)

// Log messages
const (
	LogMsgOverlayAttached = "Overlay attached"
	LogMsgOverlayDetached = "Overlay detached"
)
