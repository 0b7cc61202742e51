package nes

// Reference:
//   https://www.nesdev.org/wiki/Controller_reading
//   https://www.nesdev.org/wiki/Controller_reading_code

// Button indexes the 8 buttons in the controller's shift-register
// order: A, B, Select, Start, Up, Down, Left, Right.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller models a standard NES joypad's 8-bit parallel-in,
// serial-out shift register.
type Controller struct {
	buttons [8]bool
	index   byte
	strobe  byte
}

func NewController() *Controller {
	return &Controller{}
}

// SetButton updates one button's pressed state.
func (c *Controller) SetButton(b Button, pressed bool) {
	c.buttons[b] = pressed
}

// read shifts out the next button state. Reads past the 8th bit
// return 1, matching real controller open-bus behavior. Each read
// samples the live button state: no snapshot of the buttons is taken
// when the strobe falls, so a button that changes mid-sequence is
// reported at its new state.
func (c *Controller) read() byte {
	var result byte = 1
	if c.index < 8 {
		if c.buttons[c.index] {
			result = 1
		} else {
			result = 0
		}
		c.index++
	}
	if c.strobe&1 == 1 {
		c.index = 0
	}
	return result
}

// write latches the strobe bit. While set, every read reports button
// A; on the falling edge the shift register starts over from button A.
func (c *Controller) write(data byte) {
	c.strobe = data
	if c.strobe&1 == 1 {
		c.index = 0
	}
}
