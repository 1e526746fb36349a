// Package link builds provider links for files in a local checkout.
//
// [Build] runs the whole pipeline under one context: locate the repository,
// load the effective configuration, resolve branch, remote and commit, pick
// the provider and render the URL.
package link
