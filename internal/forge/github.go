package forge

func (f *Forge) githubURL(branch, filePath string, lines lineRange) string {
	ref, _ := f.ref(branch)
	values := map[string]any{
		"base":  f.BaseURL(),
		"ref":   ref,
		"path":  filePath,
		"start": lines.first(),
		"end":   lines.last(),
	}

	switch {
	case filePath == "":
		return render("{base}/tree/{ref}", values)
	case lines.none():
		return render("{base}/blob/{ref}{path}", values)
	case lines.isRange():
		return render("{base}/blob/{ref}{path}#L{start}-L{end}", values)
	default:
		return render("{base}/blob/{ref}{path}#L{start}", values)
	}
}

func (f *Forge) githubPullRequestURL(branch string) string {
	return render("{base}/pull/new/{branch}", map[string]any{
		"base":   f.BaseURL(),
		"branch": branch,
	})
}
