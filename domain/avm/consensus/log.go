// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"github.com/atomicals/avmd/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.AVMC)
