package nlp

import (
	nlpService "github.com/autopilot-ai/AP-SchedulerService/internal/service/nlp"
)

type Parser interface {
	Parse(text string) nlpService.ParseResult
	KnownEntities() nlpService.Entities
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
