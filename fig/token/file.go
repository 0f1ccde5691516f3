package token

import (
	"fmt"
	"os"
)

type File struct {
	Name  string
	Src   []byte // File source
	Lines []int  // Offsets of beginning of each line, starting at 0.
	Err   error  // Error set on creation. Not returned by constructor for convenience.
}

func NewFile(filename string, src any) *File {
	file := &File{
		Name: filename,
	}

	srcBytes, err := readSource(filename, src)
	if err != nil {
		srcBytes = []byte{}
		file.Err = err
	}

	file.Src = srcBytes
	file.Lines = getLines(srcBytes)
	return file
}

func readSource(filename string, src any) ([]byte, error) {
	if src != nil {
		switch src := src.(type) {
		case string:
			return []byte(src), nil

		case []byte:
			return src, nil

		default:
			return nil, fmt.Errorf("invalid src type")
		}
	}

	return os.ReadFile(filename)
}

// Line returns the source at the given row (line number -1), without the
// trailing newline.
func (f *File) Line(row int) string {
	if row < 0 || row >= len(f.Lines) {
		return ""
	}

	offset := f.Lines[row]
	end := offset
	for end < len(f.Src) && f.Src[end] != '\n' {
		end++
	}

	return string(f.Src[offset:end])
}

func getLines(src []byte) []int {
	lines := []int{0}
	for i, c := range src {
		if c == '\n' && i+1 < len(src) {
			lines = append(lines, i+1)
		}
	}

	return lines
}
