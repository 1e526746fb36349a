package forge

// GitLab anchors only the first line of a selection.
func (f *Forge) gitlabURL(branch, filePath string, lines lineRange) string {
	values := map[string]any{
		"base":   f.BaseURL(),
		"branch": branch,
		"path":   filePath,
		"line":   lines.first(),
	}

	switch {
	case filePath == "":
		return render("{base}/tree/{branch}", values)
	case lines.none():
		return render("{base}/blob/{branch}{path}", values)
	default:
		return render("{base}/blob/{branch}{path}#L{line}", values)
	}
}
