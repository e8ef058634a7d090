package errlogs

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/fox/foxenv"
)

// Sink appends one line per immutable update failure to a file.
// The file is opened, written and closed for every event.
type Sink struct {
	Path string
}

func Line(name string) string {
	return fmt.Sprintf("Error: Variable %s is immutable!\n", name)
}

var _ foxenv.ErrorHandler = Sink{}.Handle

func (s Sink) Handle(ctx context.Context, err error) error {
	name, ok := foxenv.ImmutableName(err)
	if !ok {
		return nil
	}
	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("open error log: %w", err)
	}
	if _, err := f.WriteString(Line(name)); err != nil {
		f.Close()
		return fmt.Errorf("write error log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close error log: %w", err)
	}
	return nil
}
