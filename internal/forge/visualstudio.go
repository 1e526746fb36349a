package forge

import "strings"

// visualStudioBase returns the repository URL for Azure DevOps and
// visualstudio.com remotes. SSH remotes carry a "v3/" path that maps onto
// the "_git" web layout:
//
//	git@ssh.dev.azure.com:v3/org/project/repo       -> https://dev.azure.com/org/project/_git/repo
//	account@vs-ssh.visualstudio.com:v3/account/p/r  -> https://account.visualstudio.com/p/_git/r
func visualStudioBase(r RemoteDescriptor, protocol string) string {
	parts := strings.Split(r.Path(), "/")
	if len(parts) == 4 && parts[0] == "v3" {
		org, project, repo := parts[1], parts[2], parts[3]
		if hostMatches(r.Host, "visualstudio.com") {
			return protocol + "://" + org + ".visualstudio.com/" + project + "/_git/" + repo
		}
		return protocol + "://dev.azure.com/" + org + "/" + project + "/_git/" + repo
	}
	return r.BaseURL(protocol)
}

func (f *Forge) visualStudioURL(branch, filePath string, lines lineRange) string {
	values := map[string]any{
		"base":   f.BaseURL(),
		"branch": branch,
		"path":   filePath,
		"line":   lines.first(),
	}

	switch {
	case filePath == "":
		return render("{base}?version=GB{branch}", values)
	case lines.none():
		return render("{base}?path={path}&version=GB{branch}", values)
	default:
		return render("{base}?path={path}&version=GB{branch}&line={line}", values)
	}
}
