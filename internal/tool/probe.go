package tool

import (
	"context"
	"strings"
	"time"
)

// probeCacheTTL keeps repeated status checks from re-running the binaries.
const probeCacheTTL = 5 * time.Minute

func (p *implProber) Check(ctx context.Context, force bool) Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !force && !p.cached.LastChecked.IsZero() && time.Since(p.cached.LastChecked) < p.ttl {
		return p.cached
	}

	var st Status
	st.PythonVersion, st.Python = p.probe(ctx, p.python, "--version")
	st.FFmpegVersion, st.FFmpeg = p.probe(ctx, p.ffmpeg, "-version")
	st.Ready = st.Python && st.FFmpeg
	st.LastChecked = time.Now()

	p.cached = st
	return st
}

// probe runs a version query and returns the first output line.
func (p *implProber) probe(ctx context.Context, name string, args ...string) (string, bool) {
	out, err := p.run(ctx, name, args...)
	if err != nil {
		return "", false
	}
	line := strings.TrimSpace(string(out))
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	return line, true
}
