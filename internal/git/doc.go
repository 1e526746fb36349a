// Package git reads the local Git metadata gitlink needs to build links.
//
// Everything is read straight from disk: the .git directory or pointer file,
// the INI-style config, HEAD and the ref files. The git binary is only used as
// a fallback for commit lookup when refs are stored in a format we do not
// read, so gitlink keeps working on machines without git in PATH.
//
// # Repository Layout
//
// [Locate] walks upward from a file to the nearest .git entry and resolves
// indirection:
//
//   - .git directory: regular checkout, config at .git/config
//   - .git file pointing into .git/worktrees/<name>: linked worktree, the main
//     repository's config is authoritative
//   - .git file pointing into .git/modules/<name>: submodule, its own config
//
// # Branch and Remote
//
// [ResolveState] combines HEAD, the branch tracking section and the remote
// sections into the branch, remote URL and commit a link is built from.
// Branch to remote lookups only ever read the `branch "<name>"` section.
package git
