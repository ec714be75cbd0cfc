// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r30

import (
	"errors"
)

// ErrSourceRead wraps the underlying cause when the message source
// fails mid-stream. No digest is produced on this path.
var ErrSourceRead = errors.New("read message source")
