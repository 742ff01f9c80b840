package graphics

import "github.com/richinsley/goshadertweak/inputs"

// Context defines the interface for an OpenGL context with a window.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// GetMouseInput returns the current mouse state: x, y, clickX, clickY
	GetMouseInput() [4]float32
	SetInputHandler(h InputHandler)
}

// InputHandler receives window input on the render thread, from inside
// EndFrame.
type InputHandler interface {
	KeyReleased(k inputs.Key)
	// Dragged reports a left-button drag in framebuffer pixels, y up.
	Dragged(dx, dy float64)
	Scrolled(amount float64)
}
