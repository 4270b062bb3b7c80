package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "Galaxy - H: controls, R: regenerate, F/double-click: fullscreen, Space: pause, Esc/Q: quit"

	// Tweak panel dimensions
	PanelWidth     = 340
	PanelX         = 12
	PanelY         = 36
	PanelHeaderH   = 24
	PanelRowHeight = 30
	PanelLabelW    = 130

	// Camera
	CameraFOV         = 55 // degrees
	CameraNear        = 1
	CameraFar         = 100
	CameraDistance    = 6
	MinCameraDistance = 2
	MaxCameraDistance = 20
	CameraDamping     = 0.05
	OrbitSpeed        = 0.005 // radians per dragged pixel
	ZoomSpeed         = 0.1

	// Visualization parameters
	RotationSpeed  = 0.01 // radians per second
	TimingRingSize = 32

	DoubleClickInterval = 300 * time.Millisecond
	WatchDebounce       = 100 * time.Millisecond
)
