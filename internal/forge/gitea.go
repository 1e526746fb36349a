package forge

func (f *Forge) giteaURL(branch, filePath string, lines lineRange) string {
	refPath := "branch/" + branch
	if sha, ok := f.ref(branch); ok {
		refPath = "commit/" + sha
	}

	values := map[string]any{
		"base": f.BaseURL(),
		"ref":  refPath,
		"path": filePath,
		"line": lines.first(),
	}

	if lines.none() {
		return render("{base}/src/{ref}{path}", values)
	}
	return render("{base}/src/{ref}{path}#L{line}", values)
}
