package main

import "github.com/escrownet/escrowd/infrastructure/logger"

var log = logger.Get(logger.SubsystemTags.ESCD)
