package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/sandeepkv93/rem/internal/model"
	"github.com/sandeepkv93/rem/internal/views"
)

// newRenderer enables styling only when stdout is a terminal; piped output
// stays plain.
func newRenderer() *views.Renderer {
	return views.NewRenderer(isatty.IsTerminal(os.Stdout.Fd()))
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q, want a number", model.ErrParse, arg)
	}
	return id, nil
}
