package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// EnsureOutputDir creates dir (and parents) if it doesn't exist yet.
func EnsureOutputDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrapf(err, "could not create output dir %v", dir)
	}
	return nil
}

// MidiPath joins dir and name, adding a .mid extension when name has none.
func MidiPath(dir string, name string) string {
	if !strings.HasSuffix(name, ".mid") && !strings.HasSuffix(name, ".midi") {
		name += ".mid"
	}
	return filepath.Join(dir, name)
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) int64 {
	var total int64
	for _, v := range nums {
		total += int64(v)
	}
	return total
}

// Sign returns -1, 0 or 1.
func Sign[A constraints.Signed](num A) A {
	switch {
	case num < 0:
		return -1
	case num > 0:
		return 1
	}
	return 0
}
