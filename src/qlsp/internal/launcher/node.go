package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	_minNodeMajor       = 18
	_nodeVersionTimeout = 5 * time.Second
	_nodeBinary         = "node"

	_envGlibcLinker = "VSCODE_SERVER_CUSTOM_GLIBC_LINKER"
	_envGlibcPath   = "VSCODE_SERVER_CUSTOM_GLIBC_PATH"

	_sysrootLinkerX64   = "/opt/vsc-sysroot/lib/ld-linux-x86-64.so.2"
	_sysrootLinkerArm64 = "/opt/vsc-sysroot/lib/ld-linux-aarch64.so.1"
	_sysrootGlibcPath   = "/opt/vsc-sysroot/lib/"
)

var _nodeVersionRegex = regexp.MustCompile(`^v?(\d+)\.`)

// resolveNode picks the node runtime: the configured path, then a bundled node new enough
// to run the server, then the first suitable node on PATH, and finally the bundled path
// even when it could not be verified.
func (l *launcher) resolveNode(ctx context.Context) string {
	if l.cfg.Node.Path != "" {
		return l.cfg.Node.Path
	}

	bundled := l.cfg.Node.BundledPath
	if bundled != "" {
		if ok, _ := l.fs.FileExists(bundled); ok && l.nodeVersionSupported(ctx, bundled) {
			return bundled
		}
	}

	if found, err := l.lookPath(_nodeBinary); err == nil && l.nodeVersionSupported(ctx, found) {
		l.logger.Infow("using node from PATH", "node", found)
		return found
	}

	l.logger.Warnw("no node runtime with a supported version found, falling back to bundled path",
		"node", bundled,
		"minMajor", _minNodeMajor,
	)
	if bundled == "" {
		return _nodeBinary
	}
	return bundled
}

func (l *launcher) nodeVersionSupported(ctx context.Context, node string) bool {
	ctx, cancel := context.WithTimeout(ctx, _nodeVersionTimeout)
	defer cancel()

	stdout, _, _, err := l.executor.Run(exec.CommandContext(ctx, node, "--version"))
	if err != nil {
		l.logger.Debugw("node version check failed", "node", node, "error", err)
		return false
	}

	major, err := parseNodeMajor(stdout)
	if err != nil {
		l.logger.Debugw("unrecognized node version", "node", node, "version", stdout)
		return false
	}
	return major >= _minNodeMajor
}

func parseNodeMajor(version string) (int, error) {
	m := _nodeVersionRegex.FindStringSubmatch(strings.TrimSpace(version))
	if m == nil {
		return 0, fmt.Errorf("unrecognized node version %q", version)
	}
	return strconv.Atoi(m[1])
}

// glibcPatch returns the linker and library path used to run node against a custom glibc,
// or empty strings when no patch applies.
func (l *launcher) glibcPatch() (linker string, libPath string) {
	if l.goos != "linux" {
		return "", ""
	}

	linker = os.Getenv(_envGlibcLinker)
	libPath = os.Getenv(_envGlibcPath)
	if linker == "" || libPath == "" {
		libPath = _sysrootGlibcPath
		switch l.goarch {
		case "amd64":
			linker = _sysrootLinkerX64
		case "arm64":
			linker = _sysrootLinkerArm64
		default:
			return "", ""
		}
	}

	linkerOK, _ := l.fs.FileExists(linker)
	libOK, _ := l.fs.DirExists(libPath)
	if !linkerOK || !libOK {
		return "", ""
	}
	return linker, libPath
}
