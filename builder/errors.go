package builder

import "errors"

// ErrNilConstructor indicates a nil Constructor was passed to BuildNetwork.
var ErrNilConstructor = errors.New("builder: nil constructor")
