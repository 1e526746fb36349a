package forge

import "strings"

// customBase joins the configured base URL (or the remote host) with the
// configured provider path and the repository path.
func customBase(r RemoteDescriptor, opts Options) string {
	base := strings.TrimSuffix(opts.CustomBaseURL, "/")
	if base == "" {
		base = opts.Protocol + "://" + r.Authority()
	}
	if p := strings.Trim(opts.CustomProviderPath, "/"); p != "" {
		base += "/" + p
	}
	return base + "/" + r.Path()
}

func (f *Forge) customURL(branch, filePath string, lines lineRange) string {
	values := map[string]any{
		"base":   f.BaseURL(),
		"blob":   f.Options.CustomBlobPath,
		"branch": branch,
		"path":   filePath,
		"prefix": f.Options.CustomLinePrefix,
		"line":   lines.first(),
	}

	switch {
	case filePath == "":
		return render("{base}/tree/{branch}", values)
	case lines.none():
		return render("{base}/{blob}/{branch}{path}", values)
	default:
		return render("{base}/{blob}/{branch}{path}{prefix}{line}", values)
	}
}
