package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/goshadertweak/graphics"
	"github.com/richinsley/goshadertweak/inputs"
	"github.com/richinsley/goshadertweak/options"
)

// Context is a GLFW window with a GL 4.1 core context.
type Context struct {
	window          *glfw.Window
	handler         graphics.InputHandler
	lastMouseClickX float64
	lastMouseClickY float64
	mouseWasDown    bool
	// cursor position at the previous drag event, in window coordinates
	dragging     bool
	dragX, dragY float64
}

// New creates and initializes a new GLFW window and returns a Context object.
func New(options *options.ShaderOptions) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(*options.Width, *options.Height, *options.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetScrollCallback(c.glfwScrollCallback)
	return c, nil
}

// SetInputHandler routes key releases, drags and scrolls to h.
func (c *Context) SetInputHandler(h graphics.InputHandler) {
	c.handler = h
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
		return
	}
	if action == glfw.Release && c.handler != nil {
		c.handler.KeyReleased(inputs.Key(key))
	}
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	c.dragging = action == glfw.Press
	if c.dragging {
		c.dragX, c.dragY = w.GetCursorPos()
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if !c.dragging || c.handler == nil {
		return
	}
	scaleX, scaleY := c.pixelScale()
	dx := (xpos - c.dragX) * scaleX
	// window y grows downwards, shader space grows upwards
	dy := (c.dragY - ypos) * scaleY
	c.dragX, c.dragY = xpos, ypos
	if dx != 0 || dy != 0 {
		c.handler.Dragged(dx, dy)
	}
}

func (c *Context) glfwScrollCallback(w *glfw.Window, xoff, yoff float64) {
	if yoff != 0 && c.handler != nil {
		c.handler.Scrolled(yoff)
	}
}

// pixelScale converts window coordinates to framebuffer pixels.
func (c *Context) pixelScale() (float64, float64) {
	fbWidth, fbHeight := c.GetFramebufferSize()
	winWidth, winHeight := c.window.GetSize()
	if winWidth <= 0 || winHeight <= 0 {
		return 1, 1
	}
	return float64(fbWidth) / float64(winWidth), float64(fbHeight) / float64(winHeight)
}

// GetMouseInput implements the method for the graphics.Context interface.
// It retrieves and processes the current mouse state.
func (c *Context) GetMouseInput() [4]float32 {
	var mouseData [4]float32
	if c.window == nil {
		return mouseData
	}

	_, fbHeight := c.GetFramebufferSize()
	scaleX, scaleY := c.pixelScale()

	cursorX, cursorY := c.window.GetCursorPos()
	pixelX := cursorX * scaleX
	pixelY := cursorY * scaleY

	mouseX := float32(pixelX)
	mouseY := float32(fbHeight) - float32(pixelY)

	isMouseDown := c.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	if isMouseDown && !c.mouseWasDown {
		c.lastMouseClickX = pixelX
		c.lastMouseClickY = pixelY
	}
	c.mouseWasDown = isMouseDown

	clickX := float32(c.lastMouseClickX)
	clickY := float32(fbHeight) - float32(c.lastMouseClickY)

	if !isMouseDown {
		clickX = -clickX
		clickY = -clickY
	}

	mouseData = [4]float32{mouseX, mouseY, clickX, clickY}
	return mouseData
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// EndFrame presents the frame and runs pending input callbacks.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
