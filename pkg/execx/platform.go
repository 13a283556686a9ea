// pkg/execx/platform.go
package execx

import (
	"os"
	"path/filepath"
	"runtime"
)

// BinDir returns the executable sub-directory used inside virtual
// environments and installation roots: "Scripts" on Windows, "bin" elsewhere.
func BinDir() string {
	return binDirFor(runtime.GOOS)
}

// ExecutableName appends the platform executable extension to a bare name.
func ExecutableName(name string) string {
	return executableNameFor(runtime.GOOS, name)
}

// JoinExecutable builds the concrete path of a named executable under root:
// root + (Scripts|bin) + name(+.exe).
func JoinExecutable(root, name string) string {
	return joinExecutableFor(runtime.GOOS, root, name)
}

// IsExecutable reports whether path exists as a regular file that the
// current user can execute. On Windows existence is enough.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode()&0111 != 0
}

func binDirFor(goos string) string {
	if goos == "windows" {
		return "Scripts"
	}
	return "bin"
}

func executableNameFor(goos, name string) string {
	if goos == "windows" {
		return name + ".exe"
	}
	return name
}

func joinExecutableFor(goos, root, name string) string {
	return filepath.Join(root, binDirFor(goos), executableNameFor(goos, name))
}
