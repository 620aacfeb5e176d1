package device

import (
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// Converter wraps the external image-to-raw tool. The tool is opaque: it is
// handed a source image and a destination path and either produces the raw
// buffer or fails. All conversion is best-effort.
type Converter struct {
	argv       []string
	lefthanded bool
	logger     hclog.Logger
}

// NewConverter creates a Converter from a command argv prefix, e.g.
// ["i4oled"]. With lefthanded set, converted images are mirrored.
func NewConverter(argv []string, lefthanded bool, logger hclog.Logger) *Converter {
	return &Converter{argv: argv, lefthanded: lefthanded, logger: logger}
}

// Available reports whether the converter binary can be found at all. When
// it cannot, callers skip conversion entirely for the run.
func (c *Converter) Available() bool {
	if len(c.argv) == 0 {
		return false
	}
	_, err := exec.LookPath(c.argv[0])
	return err == nil
}

// ConvertIcon renders a source image into a device-native raw buffer.
func (c *Converter) ConvertIcon(src, dst string) error {
	args := []string{"-i", src, "-o", dst}
	if c.lefthanded {
		args = append(args, "-l")
	}
	return c.run(args)
}

// GenerateBlank produces the empty default icon.
func (c *Converter) GenerateBlank(dst string) error {
	return c.run([]string{"-t", "", "-o", dst})
}

func (c *Converter) run(args []string) error {
	argv := append(append([]string{}, c.argv...), args...)
	c.logger.Debug("🎨 Running icon converter", "argv", argv)

	cmd := exec.Command(argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "converter %s failed: %s", argv[0], string(out))
	}
	return nil
}
