package trade

import "github.com/escrownet/escrowd/infrastructure/logger"

var log = logger.Get(logger.SubsystemTags.TRAD)
