// pkg/diag/rotate.go
package diag

import (
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

// rotateLocked compresses the full active segment to <path>.1.xz and starts
// a fresh segment. Only one compressed segment is kept. Failures leave the
// current segment in place; the log keeps growing rather than losing entries.
// Caller must hold s.mu.
func (s *Sink) rotateLocked() {
	if err := s.f.Close(); err != nil {
		s.reopenLocked()
		return
	}

	if err := compressFile(s.path, s.path+".1.xz"); err == nil {
		os.Remove(s.path)
	}
	s.reopenLocked()
}

func (s *Sink) reopenLocked() {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		s.f = nil
		return
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		s.f = nil
		return
	}
	s.f = f
	s.size = info.Size()
}

func compressFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	xw, err := xz.NewWriter(out)
	if err != nil {
		return err
	}
	if _, err := io.Copy(xw, in); err != nil {
		return err
	}
	return xw.Close()
}
