package texture

import "fmt"

// AssetLoadError reports a failed load of the primary base image. It is
// recovered internally by one retry against the fallback asset and surfaces
// only in logs.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load asset %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// FallbackLoadError reports that the fallback asset failed after the primary
// already had. It is not recovered; Synthesize returns it to the caller.
type FallbackLoadError struct {
	Path    string // fallback asset path
	Primary error  // the AssetLoadError that triggered the retry, if any
	Err     error
}

func (e *FallbackLoadError) Error() string {
	return fmt.Sprintf("load fallback asset %s: %v", e.Path, e.Err)
}

func (e *FallbackLoadError) Unwrap() error {
	return e.Err
}
