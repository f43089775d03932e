package app

import (
	"SimplyRugby/internal/club/app/port"
	"SimplyRugby/modules/kit/logx"
)

type Logger = logx.Logger

type EntityStore = port.EntityStore

type Notifier = port.Notifier
