package forge

import "errors"

var (
	// ErrUnknownProvider indicates the remote host matches no provider.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrUnsupportedOperation indicates the provider cannot build the requested URL.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrCommitRequired indicates the provider needs a commit that could not be resolved.
	ErrCommitRequired = errors.New("commit required")
)
