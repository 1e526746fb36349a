// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// Commands run under the caller's context, are echoed by the context logger in
// verbose mode, and fold stderr into the returned error so failures are
// readable for users.
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "rev-parse", "HEAD")
//	if err != nil {
//	    // err contains stderr output if available
//	}
//
//	// Fire-and-forget commands such as browser launchers:
//	err := cmd.RunContext(ctx, "", "xdg-open", url)
package cmd
